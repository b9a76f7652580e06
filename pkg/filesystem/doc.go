// Package filesystem holds the small afero helpers shared by the manifest
// loaders, the pipeline and the CLI. Every caller takes an afero.Fs so
// tests run against afero.NewMemMapFs while the CLI uses the real disk.
package filesystem
