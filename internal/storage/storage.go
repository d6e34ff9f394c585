// Package storage abstracts physical byte storage for uploaded photos under a
// single root directory. The database remains the authoritative record of
// which files exist; file presence is best-effort.
package storage

import (
	"errors"
	"io"
)

// ErrNotFound signals that the named file does not exist under the root or is
// unreadable.
var ErrNotFound = errors.New("storage: arquivo não encontrado")

// FileStorage define o comportamento básico para armazenar e servir os
// arquivos de foto das ocorrências.
type FileStorage interface {
	// Store writes conteudo under a fresh collision-resistant stored name
	// derived from nomeOriginal and returns that name for persistence in a
	// FotoOcorrencia row. The root directory is created on first use.
	Store(conteudo io.Reader, nomeOriginal string) (string, error)
	// Open resolves caminho under the root, rejecting path traversal, and
	// returns the file for streaming. Fails with ErrNotFound when absent.
	Open(caminho string) (io.ReadCloser, error)
	// Delete removes the named file. Deleting a nonexistent file is not an
	// error — cascade-cleanup paths rely on idempotence.
	Delete(caminho string) error
	// ContentType probes the stored file's MIME type, falling back to
	// application/octet-stream when it cannot be determined.
	ContentType(caminho string) string
}
