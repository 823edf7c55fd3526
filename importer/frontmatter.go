package importer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// Metadata is the structured frontmatter extracted from a Markdown source
// file. Unknown keys are preserved in Custom.
type Metadata struct {
	Title  string
	Slug   string
	Tags   []string
	Author string
	Date   time.Time
	Draft  bool
	Custom map[string]any
}

// ParseFrontMatter extracts metadata and the Markdown body from the provided
// source bytes. Sources without a frontmatter block return empty metadata and
// the body unchanged.
func ParseFrontMatter(source []byte) (Metadata, []byte, error) {
	var env frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("importer: parse frontmatter: %w", err)
	}

	return envelopeToMetadata(env), body, nil
}

type frontMatterEnvelope struct {
	Title  string         `yaml:"title"`
	Slug   string         `yaml:"slug"`
	Tags   []string       `yaml:"tags"`
	Author string         `yaml:"author"`
	Date   time.Time      `yaml:"date"`
	Draft  bool           `yaml:"draft"`
	Custom map[string]any `yaml:",inline"`
}

func envelopeToMetadata(env frontMatterEnvelope) Metadata {
	custom := env.Custom
	if custom == nil {
		custom = map[string]any{}
	}
	return Metadata{
		Title:  env.Title,
		Slug:   env.Slug,
		Tags:   append([]string(nil), env.Tags...),
		Author: env.Author,
		Date:   env.Date,
		Draft:  env.Draft,
		Custom: custom,
	}
}
