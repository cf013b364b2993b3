// Package errors provides the structured error type used across rpg-cards.
//
// Every error carries a Code, a user facing Message, an optional Cause and
// free-form Meta. Besides the generic codes, three codes describe the ways a
// card source can fail:
//
//   - CodeFetchFailed: the rules site did not return the page (FetchError)
//   - CodeScrapingFailed: the page lacks a required region (ScrapingError)
//   - CodeLookupFailed: localized text matches no vocabulary member (LookupFailure)
//
// Malformed user input (bad language code, bad lang:slug token) is reported as
// CodeInvalidArgument, usually through a ValidationBuilder. A canceled or
// expired context is classified as CodeCanceled or CodeDeadlineExceeded.
//
// # Basic Usage
//
//	err := errors.ScrapingFailed(ref.Slug, "div.ecole")
//	err := errors.LookupFailed("magic school", text, "fr")
//
// Wrapping keeps the code and metadata of the cause:
//
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to scrape spell %s", ref)
//	}
//
// # Error Checking
//
//	if errors.IsFetchFailure(err) {
//	    meta := errors.GetMeta(err) // lang, slug, url, status
//	}
//
// # gRPC
//
// ToGRPCError maps codes onto gRPC status codes and attaches the code and
// metadata as a google.protobuf.Struct detail; FromGRPCError reverses it.
package errors
