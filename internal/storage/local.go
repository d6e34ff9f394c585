package storage

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage stores files flat under a single root directory. Stored names
// are prefixed with a fresh UUID, so concurrent writers never collide and the
// directory needs no locking.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

func (s *LocalStorage) Store(conteudo io.Reader, nomeOriginal string) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("criar diretório de uploads: %w", err)
	}

	caminho := uuid.New().String() + "_" + filepath.Base(nomeOriginal)

	f, err := os.Create(filepath.Join(s.root, caminho))
	if err != nil {
		return "", fmt.Errorf("criar arquivo %s: %w", caminho, err)
	}
	if _, err := io.Copy(f, conteudo); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("gravar arquivo %s: %w", caminho, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("gravar arquivo %s: %w", caminho, err)
	}
	return caminho, nil
}

func (s *LocalStorage) Open(caminho string) (io.ReadCloser, error) {
	full, err := s.resolve(caminho)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *LocalStorage) Delete(caminho string) error {
	full, err := s.resolve(caminho)
	if err != nil {
		return err
	}
	err = os.Remove(full)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStorage) ContentType(caminho string) string {
	if ct := mime.TypeByExtension(filepath.Ext(caminho)); ct != "" {
		return ct
	}
	// Sniff the first 512 bytes when the extension says nothing.
	if full, err := s.resolve(caminho); err == nil {
		if f, err := os.Open(full); err == nil {
			defer f.Close()
			buf := make([]byte, 512)
			if n, err := f.Read(buf); err == nil || err == io.EOF {
				if ct := http.DetectContentType(buf[:n]); ct != "" {
					return ct
				}
			}
		}
	}
	return "application/octet-stream"
}

// resolve normalizes caminho under the root and rejects anything that would
// escape it (path traversal on the public download route).
func (s *LocalStorage) resolve(caminho string) (string, error) {
	full := filepath.Join(s.root, filepath.Clean("/"+caminho))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrNotFound
	}
	return full, nil
}
