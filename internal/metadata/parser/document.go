package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Element tags are bound to the metadata namespace; elements from any other
// namespace are ignored. Slices keep every direct child occurrence so the
// first one wins.

type fieldDocument struct {
	XMLName  xml.Name
	Label    []string `xml:"http://soap.sforce.com/2006/04/metadata label"`
	FullName []string `xml:"http://soap.sforce.com/2006/04/metadata fullName"`
	Type     []string `xml:"http://soap.sforce.com/2006/04/metadata type"`
}

type validationRuleDocument struct {
	XMLName               xml.Name
	Active                []string `xml:"http://soap.sforce.com/2006/04/metadata active"`
	FullName              []string `xml:"http://soap.sforce.com/2006/04/metadata fullName"`
	ErrorMessage          []string `xml:"http://soap.sforce.com/2006/04/metadata errorMessage"`
	ErrorConditionFormula []string `xml:"http://soap.sforce.com/2006/04/metadata errorConditionFormula"`
}

var errTrailingContent = errors.New("content after root element")

// decodeDocument decodes the root element into target and rejects anything
// but whitespace, comments and processing instructions after it.
func decodeDocument(data []byte, target any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("document is empty")
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		switch t := token.(type) {
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return errTrailingContent
			}
		case xml.Comment, xml.ProcInst:
		default:
			return errTrailingContent
		}
	}
}
