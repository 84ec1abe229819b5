// Package docxtext extracts plain text from DOCX files. A DOCX is a zip
// archive whose word/document.xml holds the text inside w:t elements; that is
// all this package reads.
package docxtext

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const documentEntry = "word/document.xml"

func Extract(raw []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	for _, file := range archive.File {
		if file.Name == documentEntry {
			reader, err := file.Open()
			if err != nil {
				return "", fmt.Errorf("open %s: %w", documentEntry, err)
			}
			defer reader.Close()
			return collectText(reader)
		}
	}
	return "", fmt.Errorf("%s not found in archive", documentEntry)
}

// collectText walks the document XML, gathering w:t character data and
// inserting a newline per closed paragraph.
func collectText(reader io.Reader) (string, error) {
	decoder := xml.NewDecoder(reader)

	var b strings.Builder
	inText := false
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode document xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
