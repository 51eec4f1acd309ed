// Package messages loads localized message bundles from .properties files.
package messages

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"github.com/SscSPs/md_util/internal/platform/config"
	"github.com/magiconair/properties"
	"golang.org/x/text/language"
)

//go:embed bundles/*.properties
var embedded embed.FS

// DefaultBaseName is the base name of the embedded bundles.
const DefaultBaseName = "bundles/messages"

const extension = ".properties"

// Bundle resolves message keys for one locale.
type Bundle interface {
	// Message returns the pattern stored under key, or key itself when missing.
	Message(key string) string
	// Format resolves key and replaces {0}, {1}, ... with args.
	Format(key string, args ...any) string
	// Locale returns the locale of the loaded file; the base file counts as English.
	Locale() language.Tag
}

type propertiesBundle struct {
	props *properties.Properties
	tag   language.Tag
}

func (b *propertiesBundle) Message(key string) string {
	if v, ok := b.props.Get(key); ok {
		return v
	}
	return key
}

func (b *propertiesBundle) Format(key string, args ...any) string {
	return format(b.Message(key), args...)
}

func (b *propertiesBundle) Locale() language.Tag { return b.tag }

// fallbackBundle is used when no bundle file could be loaded; every key maps to itself.
type fallbackBundle struct{}

func (fallbackBundle) Message(key string) string { return key }

func (fallbackBundle) Format(key string, args ...any) string { return format(key, args...) }

func (fallbackBundle) Locale() language.Tag { return language.Und }

// Fallback returns a bundle that answers every key with the key.
func Fallback() Bundle { return fallbackBundle{} }

func format(pattern string, args ...any) string {
	if len(args) == 0 {
		return pattern
	}
	pairs := make([]string, 0, 2*len(args))
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}
	return strings.NewReplacer(pairs...).Replace(pattern)
}

// Default loads the embedded bundle best matching locale.
func Default(locale string) Bundle {
	return Load(embedded, DefaultBaseName, locale)
}

// Load reads baseName_<lang>.properties from fsys for the best match of locale,
// falling back to baseName.properties. If neither loads, the failure is logged
// and a key-echoing bundle is returned.
func Load(fsys fs.FS, baseName, locale string) Bundle {
	want, err := language.Parse(locale)
	if err != nil {
		want = language.Und
	}

	name := baseName + extension
	tag := language.English
	if available, files := variants(fsys, baseName); len(available) > 0 && want != language.Und {
		matcher := language.NewMatcher(append([]language.Tag{language.English}, available...))
		_, index, confidence := matcher.Match(want)
		if index > 0 && confidence >= language.High {
			name, tag = files[index-1], available[index-1]
		}
	}

	props, err := config.LoadPropsFS(fsys, name)
	if err != nil {
		slog.Error("Unable to load message bundle", slog.String("bundle", name), slog.String("locale", locale), slog.String("error", err.Error()))
		return Fallback()
	}
	return &propertiesBundle{props: props, tag: tag}
}

// variants lists the localized files next to baseName and their language tags.
func variants(fsys fs.FS, baseName string) ([]language.Tag, []string) {
	dir, prefix := path.Dir(baseName), path.Base(baseName)+"_"
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, nil
	}
	var tags []language.Tag
	var files []string
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasPrefix(n, prefix) || !strings.HasSuffix(n, extension) {
			continue
		}
		suffix := strings.TrimSuffix(strings.TrimPrefix(n, prefix), extension)
		tag, err := language.Parse(strings.ReplaceAll(suffix, "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		files = append(files, path.Join(dir, n))
	}
	return tags, files
}
