// Package download provides the download orchestration logic for
// fetching course videos from an Open edX platform.
//
// # Manager
//
// The Manager coordinates the entire download process:
//
//  1. Fetch course dates and the video outline
//  2. Resolve a download URL for every video
//  3. Download videos concurrently
//  4. Download and normalize thumbnails (optional)
//  5. Generate playlists (optional)
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	err := manager.Initialize(ctx, "course-v1:edX+DemoX+Demo_Course")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = manager.StartDownloads(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// The Manager downloads up to settings.MaxConcurrentDownloads videos
// in parallel.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// # Retry Logic
//
// Failed downloads are automatically retried with exponential backoff,
// configurable via settings.DownloadMaxRetries and settings.DownloadRetryCooldown.
package download
