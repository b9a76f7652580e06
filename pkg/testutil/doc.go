// Package testutil provides build output fixtures for tests.
//
// A TestBuild is a dist directory on an in-memory afero filesystem,
// populated with emitted assets, HTML documents and optional bundler
// manifests. All test data is defined inline.
package testutil
