// Package google handles OAuth2 authentication against Google APIs and
// caching of per-account tokens on disk.
package google
