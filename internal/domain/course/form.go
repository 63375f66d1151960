package course

import "strconv"

// Form holds the raw step-1 inputs before they are parsed into a draft.
// Values are kept as entered so a failed submit loses nothing.
type Form struct {
	Title         string
	Description   string
	CategoryID    string
	Language      string
	DurationHours string
	PriceMinor    string
	ThumbnailURL  string
}

// FieldErrors maps field name to validation message.
type FieldErrors map[string]string

// Validate runs every field validator and collects the failures.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	for name, value := range f.fields() {
		if msg := ValidateField(name, value); msg != "" {
			errs[name] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (f Form) fields() map[string]string {
	return map[string]string{
		FieldTitle:        f.Title,
		FieldDescription:  f.Description,
		FieldCategory:     f.CategoryID,
		FieldLanguage:     f.Language,
		FieldDuration:     f.DurationHours,
		FieldPrice:        f.PriceMinor,
		FieldThumbnailURL: f.ThumbnailURL,
	}
}

// ToDraft converts a validated form into a fresh draft with a local ID and
// no sections yet. Callers must have run Validate first; parse errors here
// mean the contract was broken.
func (f Form) ToDraft() (*Draft, error) {
	duration, err := strconv.Atoi(f.DurationHours)
	if err != nil {
		return nil, err
	}
	price, err := strconv.ParseInt(f.PriceMinor, 10, 64)
	if err != nil {
		return nil, err
	}
	return &Draft{
		LocalID:       NewLocalID(),
		Title:         f.Title,
		Description:   f.Description,
		CategoryID:    f.CategoryID,
		Language:      f.Language,
		DurationHours: duration,
		PriceMinor:    price,
		ThumbnailURL:  f.ThumbnailURL,
	}, nil
}

// FormFromDraft rebuilds the raw form from a draft, for the edit variant.
func FormFromDraft(d *Draft) Form {
	return Form{
		Title:         d.Title,
		Description:   d.Description,
		CategoryID:    d.CategoryID,
		Language:      d.Language,
		DurationHours: strconv.Itoa(d.DurationHours),
		PriceMinor:    strconv.FormatInt(d.PriceMinor, 10),
		ThumbnailURL:  d.ThumbnailURL,
	}
}
