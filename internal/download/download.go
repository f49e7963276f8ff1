/*
Package download retrieves announcement documents into a local downloads
directory, deriving a filesystem-safe filename for each.
*/
package download

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/soban-al1/fetchkybdata/internal/config"
	"github.com/soban-al1/fetchkybdata/internal/types"
)

const chunkSize = 4096

var unsafeChars = regexp.MustCompile(`[\\/*?"<>|]`)

// Retriever downloads announcement documents into Dir.
type Retriever struct {
	Dir       string
	UserAgent string
	Client    *http.Client
}

// NewRetriever returns a Retriever writing into the given directory.
func NewRetriever(dir string) *Retriever {
	return &Retriever{
		Dir:       dir,
		UserAgent: config.DownloadUserAgent,
		Client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Download fetches the announcement's linked document and writes it under
// the retriever's directory, streaming the body in fixed-size chunks.
// It returns the full local path of the written file. An existing file with
// the same name is overwritten.
func (r *Retriever) Download(ann types.Announcement) (string, error) {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory %s: %w", r.Dir, err)
	}

	req, err := http.NewRequest(http.MethodGet, ann.Link, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", ann.Link, err)
	}
	req.Header.Set("User-Agent", r.UserAgent)

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", ann.Link, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Warning: Failed to close response body for %s: %v", ann.Link, err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-OK status code %d from %s", resp.StatusCode, ann.Link)
	}

	path := filepath.Join(r.Dir, Filename(ann))

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if err := writeChunks(out, resp.Body); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close file %s: %w", path, err)
	}

	return path, nil
}

// Filename derives a safe local filename for the announcement: the final
// path segment of its link, or a synthesized date-and-title name when the
// link ends in a slash. Filesystem-unsafe characters become underscores.
func Filename(ann types.Announcement) string {
	name := ann.Link
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		name = fmt.Sprintf("%s_%s.html", ann.Date, truncateRunes(ann.Title, 30))
	}
	return unsafeChars.ReplaceAllString(name, "_")
}

func writeChunks(out *os.File, body io.Reader) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
