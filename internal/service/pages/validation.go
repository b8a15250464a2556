package pages

import (
	"fmt"
	"regexp"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func validateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: invalid slug %q", ErrInvalidInput, slug)
	}
	return nil
}

func validatePage(slug, title, content string) error {
	if err := validateSlug(slug); err != nil {
		return err
	}
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return nil
}
