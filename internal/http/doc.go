// Package http provides the HTTP client used for platform API calls
// and media downloads.
//
// # Client
//
// Client wraps the standard library http.Client with the headers the
// platform expects and an optional bearer token:
//
//	client := http.NewClient(token)
//	data, err := client.Get(ctx, datesURL)
//
// # Downloads
//
// Large files are streamed to disk with DownloadFile; progress is
// reported through a callback driven by ProgressWriter:
//
//	err := client.DownloadFile(ctx, url, path, func(written, total int64) {
//	    // update progress bar
//	})
//
// Small files like thumbnails can be fetched into memory with
// DownloadBytes.
package http
