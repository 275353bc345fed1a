package gagyebu

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
)

// http helpers for the remote rate services.

// cachingTransport caches GET responses on disk under a key that includes
// today's date, so cached rates expire at midnight.
type cachingTransport struct {
	base http.RoundTripper
}

func (c *cachingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("%x", sha1.Sum([]byte(Today().String()+" "+req.Method+" "+req.URL.String())))
	file := filepath.Join(os.TempDir(), "gagye-"+key)

	if content, err := os.ReadFile(file); err == nil {
		if resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req); err == nil {
			return resp, nil
		}
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if content, err := httputil.DumpResponse(resp, true); err == nil {
		if err := os.WriteFile(file, content, 0o600); err != nil {
			log.Printf("cache write err (ignored): %v", err)
		}
	}
	return resp, nil
}

// daily returns a client whose cached responses expire every day.
func daily() *http.Client {
	return &http.Client{Transport: &cachingTransport{http.DefaultTransport}}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(content, data)
}
