package index

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/eringen/bookshelf/library"
)

// frontMatter holds the validated, coerced metadata of one book file.
type frontMatter struct {
	Title        string
	Author       string
	Status       library.Status
	Tags         []string
	Rating       int
	Favorite     *bool
	StartedDate  string
	FinishedDate string
	ISBN         string
	CoverImage   string
	AmazonURL    string
	BolURL       string
	Published    string
	Pages        int
}

// fieldError describes why one front-matter field failed validation.
type fieldError struct {
	Field string
	Msg   string
}

func (e fieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Msg)
}

func joinFieldErrors(errs []fieldError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// fieldSpec declares one recognized front-matter field: whether it must be
// present, and how to coerce its value into the frontMatter struct.
type fieldSpec struct {
	required bool
	set      func(*frontMatter, any) error
}

// schema is the full set of recognized fields. The schema is strict: any key
// outside this table invalidates the whole file.
var schema = map[string]fieldSpec{
	"title": {required: true, set: func(fm *frontMatter, v any) error {
		return setNonEmptyString(&fm.Title, v)
	}},
	"author": {required: true, set: func(fm *frontMatter, v any) error {
		return setNonEmptyString(&fm.Author, v)
	}},
	"status": {set: func(fm *frontMatter, v any) error {
		s, err := coerceString(v)
		if err != nil {
			return err
		}
		status := library.Status(s)
		if !status.Valid() {
			return fmt.Errorf("%q is not one of reading, finished, wishlist", s)
		}
		fm.Status = status
		return nil
	}},
	"tags": {set: func(fm *frontMatter, v any) error {
		list, ok := v.([]any)
		if !ok {
			return fmt.Errorf("expected a list of strings, got %s", typeName(v))
		}
		tags := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected a list of strings, got a %s element", typeName(item))
			}
			tags = append(tags, s)
		}
		fm.Tags = tags
		return nil
	}},
	"rating": {set: func(fm *frontMatter, v any) error {
		return setInt(&fm.Rating, v, 1, 5)
	}},
	"favorite": {set: func(fm *frontMatter, v any) error {
		b, err := coerceBool(v)
		if err != nil {
			return err
		}
		fm.Favorite = &b
		return nil
	}},
	"startedDate": {set: func(fm *frontMatter, v any) error {
		return setDate(&fm.StartedDate, v)
	}},
	"finishedDate": {set: func(fm *frontMatter, v any) error {
		return setDate(&fm.FinishedDate, v)
	}},
	"isbn": {set: func(fm *frontMatter, v any) error {
		return setString(&fm.ISBN, v)
	}},
	"coverImage": {set: func(fm *frontMatter, v any) error {
		return setNonEmptyString(&fm.CoverImage, v)
	}},
	"amazonUrl": {set: func(fm *frontMatter, v any) error {
		return setURL(&fm.AmazonURL, v)
	}},
	"bolUrl": {set: func(fm *frontMatter, v any) error {
		return setURL(&fm.BolURL, v)
	}},
	"published": {set: func(fm *frontMatter, v any) error {
		return setString(&fm.Published, v)
	}},
	"pages": {set: func(fm *frontMatter, v any) error {
		return setInt(&fm.Pages, v, 1, math.MaxInt)
	}},
}

// fieldOrder fixes the order fields are checked so diagnostics come out
// deterministically.
var fieldOrder = []string{
	"title", "author", "status", "tags", "rating", "favorite",
	"startedDate", "finishedDate", "isbn", "coverImage",
	"amazonUrl", "bolUrl", "published", "pages",
}

// validate checks a parsed front-matter mapping against the schema. It
// collects every failure rather than stopping at the first, so a skipped
// file's log line names all the offending fields at once.
func validate(fm map[string]any) (frontMatter, []fieldError) {
	out := frontMatter{Status: library.StatusReading, Tags: []string{}}
	var errs []fieldError

	var unknown []string
	for key := range fm {
		if _, ok := schema[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		errs = append(errs, fieldError{Field: key, Msg: "unrecognized field"})
	}

	for _, name := range fieldOrder {
		spec := schema[name]
		v, present := fm[name]
		if !present {
			if spec.required {
				errs = append(errs, fieldError{Field: name, Msg: "required"})
			}
			continue
		}
		if v == nil {
			errs = append(errs, fieldError{Field: name, Msg: "must not be null"})
			continue
		}
		if err := spec.set(&out, v); err != nil {
			errs = append(errs, fieldError{Field: name, Msg: err.Error()})
		}
	}
	return out, errs
}

func coerceString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %s", typeName(v))
	}
	return s, nil
}

func setString(dst *string, v any) error {
	s, err := coerceString(v)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func setNonEmptyString(dst *string, v any) error {
	s, err := coerceString(v)
	if err != nil {
		return err
	}
	if s == "" {
		return fmt.Errorf("must not be empty")
	}
	*dst = s
	return nil
}

// setInt coerces a number or numeric-looking string into an integer within
// [min, max].
func setInt(dst *int, v any, min, max int) error {
	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int64:
		n = int(t)
	case uint64:
		n = int(t)
	case float64:
		if t != math.Trunc(t) {
			return fmt.Errorf("must be an integer")
		}
		n = int(t)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return fmt.Errorf("%q is not numeric", t)
		}
		n = parsed
	default:
		return fmt.Errorf("expected number, got %s", typeName(v))
	}
	if n < min || n > max {
		if max == math.MaxInt {
			return fmt.Errorf("must be at least %d", min)
		}
		return fmt.Errorf("must be between %d and %d", min, max)
	}
	*dst = n
	return nil
}

// coerceBool accepts a native boolean or a boolean-looking string.
func coerceBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, fmt.Errorf("%q is not a boolean", t)
		}
		return b, nil
	}
	return false, fmt.Errorf("expected boolean, got %s", typeName(v))
}

// setDate normalizes a polymorphic date value. YAML parses unquoted
// ISO dates into time.Time; those are formatted as calendar dates. Textual
// dates pass through verbatim.
func setDate(dst *string, v any) error {
	switch t := v.(type) {
	case time.Time:
		*dst = t.UTC().Format("2006-01-02")
		return nil
	case string:
		*dst = t
		return nil
	}
	return fmt.Errorf("expected date, got %s", typeName(v))
}

func setURL(dst *string, v any) error {
	s, err := coerceString(v)
	if err != nil {
		return err
	}
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", s)
	}
	*dst = s
	return nil
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	case time.Time:
		return "date"
	}
	return fmt.Sprintf("%T", v)
}
