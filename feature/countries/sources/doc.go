// Package sources fetches the country list from RestCountries and the latest
// USD exchange rates. Every failure, including timeouts, non-2xx statuses and
// undecodable payloads, is reported as an external service error naming the
// upstream that failed.
package sources
