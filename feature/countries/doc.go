// Package countries serves the cached country records over HTTP.
//
// Routes:
//
//	POST   /countries/refresh  fetch upstream data and reconcile the store
//	GET    /countries          list, filtered by region/currency and sorted
//	GET    /countries/image    latest summary PNG
//	GET    /countries/:name    single country, case-insensitive
//	DELETE /countries/:name    remove a country
//	GET    /status             record count and last refresh time
//
// Refresh failures caused by an upstream source answer 503 with the underlying
// message in "details". Missing records answer 404 and malformed list queries 400.
package countries
