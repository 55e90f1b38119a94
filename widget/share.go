package widget

import "net/url"

// ShareURL builds the outbound messaging deep link for the current text,
// URL-encoded. Empty or whitespace-only text falls back to the default, so
// the link never carries an empty payload.
func (w *Widget) ShareURL() string {
	q := url.Values{}
	q.Set("text", w.ShareText())
	return w.shareURL + "?" + q.Encode()
}
