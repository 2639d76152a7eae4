package extract

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrEncrypted is returned for password-protected documents.
	ErrEncrypted = errors.New("pdf is encrypted")
	// ErrNoText is returned when extraction yields no content.
	ErrNoText = errors.New("no extractable text")
)

// Text pulls plain text from an in-memory PDF payload.
// Library used: github.com/ledongthuc/pdf.
func Text(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNoText
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "encrypt") || strings.Contains(strings.ToLower(err.Error()), "password") {
			return "", ErrEncrypted
		}
		return "", err
	}

	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}

	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

// Normalize collapses escaped whitespace sequences to literal characters and
// strips double quotes so the text embeds cleanly in a JSON-framed prompt.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, `\r\n`, "\n")
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\t`, "\t")
	text = strings.ReplaceAll(text, `"`, "")
	return strings.TrimSpace(text)
}
