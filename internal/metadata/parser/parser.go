package parser

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-metadoc/internal/logging"
	"github.com/goliatone/go-metadoc/pkg/interfaces"
	"github.com/goliatone/go-metadoc/pkg/metadata"
)

// Parser implements metadata.Parser using encoding/xml.
type Parser struct {
	fs     fs.FS
	trim   bool
	logger interfaces.Logger
}

// Ensure the implementation satisfies the public interface.
var _ metadata.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options metadata.ParserOptions) *Parser {
	files := options.FileSystem
	if files == nil {
		base := options.BasePath
		if base == "" {
			base = "."
		}
		files = os.DirFS(base)
	}
	return &Parser{
		fs:     files,
		trim:   options.TrimSpace,
		logger: logging.OrNoOp(options.Logger),
	}
}

// ParseField reads the label, fullName and type elements of a field
// descriptor.
func (p *Parser) ParseField(ctx context.Context, path string) (metadata.FieldRecord, error) {
	var doc fieldDocument
	if err := p.decode(ctx, path, &doc); err != nil {
		return metadata.FieldRecord{}, err
	}

	record := metadata.FieldRecord{
		Label:   p.text(doc.Label),
		APIName: p.text(doc.FullName),
		Type:    p.text(doc.Type),
	}
	p.logger.Debug("extracted field", "path", path, "label", record.Label, "api_name", record.APIName, "type", record.Type)
	return record, nil
}

// ParseValidationRule reads a validation rule descriptor. Rules whose active
// flag is absent or anything other than "true" are reported as skipped.
func (p *Parser) ParseValidationRule(ctx context.Context, path string) (metadata.ValidationRuleRecord, bool, error) {
	var doc validationRuleDocument
	if err := p.decode(ctx, path, &doc); err != nil {
		return metadata.ValidationRuleRecord{}, false, err
	}

	if !isActive(doc.Active) {
		return metadata.ValidationRuleRecord{}, false, nil
	}

	record := metadata.ValidationRuleRecord{
		Name:        p.text(doc.FullName),
		Description: p.text(doc.ErrorMessage),
		Formula:     p.text(doc.ErrorConditionFormula),
	}
	p.logger.Debug("extracted validation rule", "path", path, "name", record.Name)
	return record, true, nil
}

func (p *Parser) decode(ctx context.Context, path string, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return errors.New("metadata parser: descriptor path is required")
	}

	p.logger.Debug("parsing descriptor", "path", path)

	data, err := fs.ReadFile(p.fs, path)
	if err != nil {
		return fmt.Errorf("metadata parser: read %s: %w", path, err)
	}
	if err := decodeDocument(data, target); err != nil {
		return &metadata.InvalidDescriptorError{Path: path, Err: err}
	}
	return nil
}

// text returns the first occurrence of an element, or the placeholder when
// the element is absent or empty.
func (p *Parser) text(values []string) string {
	if len(values) == 0 {
		return metadata.Placeholder
	}
	value := values[0]
	if p.trim {
		value = strings.TrimSpace(value)
	}
	if strings.TrimSpace(value) == "" {
		return metadata.Placeholder
	}
	return value
}

func isActive(values []string) bool {
	if len(values) == 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(values[0]), "true")
}
