package errors

import "fmt"

// FetchFailed reports a page that the rules site refused or failed to serve.
// status is zero when no HTTP response was received.
func FetchFailed(lang, slug, url string, status int) *Error {
	msg := fmt.Sprintf("failed to fetch %s:%s", lang, slug)
	if status > 0 {
		msg = fmt.Sprintf("%s: HTTP %d", msg, status)
	}
	err := New(CodeFetchFailed, msg).
		WithMeta("lang", lang).
		WithMeta("slug", slug).
		WithMeta("url", url)
	if status > 0 {
		err.WithMeta("status", status)
	}
	return err
}

// ScrapingFailed reports a required page region that matched nothing
func ScrapingFailed(slug, selector string) *Error {
	return Newf(CodeScrapingFailed, "no element matches %q on page %s", selector, slug).
		WithMeta("slug", slug).
		WithMeta("selector", selector)
}

// LookupFailed reports localized text that is not a member of the named vocabulary
func LookupFailed(vocabulary, text, lang string) *Error {
	return Newf(CodeLookupFailed, "%q is not a known %s in %s", text, vocabulary, lang).
		WithMeta("vocabulary", vocabulary).
		WithMeta("text", text).
		WithMeta("lang", lang)
}
