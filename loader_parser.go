package metadoc

import (
	internalParser "github.com/goliatone/go-metadoc/internal/metadata/parser"
	internalResolver "github.com/goliatone/go-metadoc/internal/metadata/resolver"
	"github.com/goliatone/go-metadoc/pkg/metadata"
)

// NewResolver constructs a resolver using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewResolver(options ...metadata.ResolverOption) metadata.Resolver {
	cfg := metadata.NewResolverOptions(options...)
	return internalResolver.New(cfg)
}

// NewParser constructs a descriptor parser backed by the internal
// implementation.
func NewParser(options ...metadata.ParserOption) metadata.Parser {
	cfg := metadata.NewParserOptions(options...)
	return internalParser.New(cfg)
}
