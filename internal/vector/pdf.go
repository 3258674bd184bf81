package vector

import (
	"fmt"
	"regexp"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/gen2brain/go-fitz"
)

var inlineImageRegex = regexp.MustCompile(`!\[\]\(data:image/[^)]+\)`)

// pdfToMarkdown renders each PDF page as HTML and converts it to markdown so
// the header-aware splitter can follow the document's section structure.
func pdfToMarkdown(contents []byte) (string, error) {
	doc, err := fitz.NewFromMemory(contents)
	if err != nil {
		return "", fmt.Errorf("could not open PDF: %w", err)
	}
	defer doc.Close()

	var out string
	for i := 0; i < doc.NumPage(); i++ {
		html, err := doc.HTML(i, true)
		if err != nil {
			return "", fmt.Errorf("could not render page %d: %w", i, err)
		}

		converter := md.NewConverter("", true, nil)
		text, err := converter.ConvertString(html)
		if err != nil {
			return "", fmt.Errorf("could not convert page %d to markdown: %w", i, err)
		}

		// Strip embedded base64 images, they bloat chunks with noise.
		out += inlineImageRegex.ReplaceAllString(text, "") + "\n\n"
	}

	return out, nil
}
