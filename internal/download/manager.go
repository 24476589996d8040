package download

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hamzaanis/openedx-client/internal/config"
	"github.com/hamzaanis/openedx-client/internal/dateutil"
	"github.com/hamzaanis/openedx-client/internal/edx"
	edxhttp "github.com/hamzaanis/openedx-client/internal/http"
	ioutils "github.com/hamzaanis/openedx-client/internal/io"
	"github.com/hamzaanis/openedx-client/internal/media"
	"github.com/hamzaanis/openedx-client/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates fetching a course and downloading its videos.
type Manager struct {
	settings     *config.Settings
	httpClient   *edxhttp.Client
	service      *edx.Service
	playlist     *media.PlaylistCreator
	imageService *ioutils.ImageService

	course       *model.Course
	dates        *model.CourseDateModel
	downloadURLs map[string]string // video ID -> resolved URL

	totalBytes      int64
	receivedBytes   int64
	totalFiles      int32
	downloadedFiles int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	client := edxhttp.NewClient(settings.AccessToken)
	parser := edx.NewParser(settings.ToPathConfig(), settings.ToVideoFileConfig())

	var playlistFormat media.PlaylistFormat
	switch settings.PlaylistFormat {
	case "pls":
		playlistFormat = media.FormatPLS
	default:
		playlistFormat = media.FormatM3U
	}

	return &Manager{
		settings:     settings,
		httpClient:   client,
		service:      edx.NewService(settings.APIBaseURL, client, parser),
		playlist:     media.NewPlaylistCreator(playlistFormat, settings.M3UExtended),
		imageService: ioutils.NewImageService(),
		downloadURLs: make(map[string]string),
		onProgress:   onProgress,
	}
}

// IsDownloadableVideoURL reports whether a URL points at a file the
// client can store locally: an http(s) URL for an mp4 file. HLS
// manifests and everything else are stream-only.
func IsDownloadableVideoURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(parsed.Path), ".mp4")
}

// Initialize fetches the course dates and video outline for a course
// and resolves a download URL for every video.
func (m *Manager) Initialize(ctx context.Context, courseID string) error {
	today := dateutil.StripTime(time.Now())

	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching course dates: %s", courseID), Level: LevelVerbose})
	dates, err := m.service.FetchCourseDates(ctx, courseID, today)
	if err != nil {
		return err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching video outline: %s", courseID), Level: LevelVerbose})
	course, err := m.service.FetchVideoOutline(ctx, courseID)
	if err != nil {
		return err
	}

	m.finishInitialize(ctx, dates, course)
	return nil
}

// InitializeFromFiles loads previously saved payloads instead of
// calling the API. Either path may be empty to skip that payload.
func (m *Manager) InitializeFromFiles(ctx context.Context, datesPath, outlinePath string) error {
	today := dateutil.StripTime(time.Now())

	var dates *model.CourseDateModel
	if datesPath != "" {
		var err error
		dates, err = m.service.LoadCourseDatesFile(datesPath, today)
		if err != nil {
			return err
		}
	}

	var course *model.Course
	if outlinePath != "" {
		var err error
		course, err = m.service.LoadVideoOutlineFile(outlinePath)
		if err != nil {
			return err
		}
	}

	m.finishInitialize(ctx, dates, course)
	return nil
}

// finishInitialize stores the fetched models, resolves download URLs
// and computes download totals.
func (m *Manager) finishInitialize(ctx context.Context, dates *model.CourseDateModel, course *model.Course) {
	m.mu.Lock()
	m.dates = dates
	m.course = course
	m.mu.Unlock()

	if dates != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d course date entries", len(dates.Blocks)), Level: LevelInfo})
	}
	if course == nil {
		return
	}

	quality := m.settings.Quality()
	for _, video := range course.Videos {
		downloadURL, ok := video.DownloadURL(m.settings.UseVideoPipeline, quality, IsDownloadableVideoURL)
		if !ok {
			m.progress(ProgressEvent{Message: fmt.Sprintf("No downloadable source for %s", video.Name), Level: LevelWarning})
			continue
		}
		m.downloadURLs[video.ID] = downloadURL
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Found course: %s (%d of %d videos downloadable)", course.Name, len(m.downloadURLs), len(course.Videos)),
		Level:   LevelInfo,
	})

	m.calculateTotals(ctx)
}

// calculateTotals pre-computes total bytes and files for progress
// reporting. Reported encoding sizes are preferred; the server is only
// asked when the outline carries no size.
func (m *Manager) calculateTotals(ctx context.Context) {
	quality := m.settings.Quality()
	for _, video := range m.course.Videos {
		downloadURL, ok := m.downloadURLs[video.ID]
		if !ok {
			continue
		}
		m.totalFiles++

		if enc, ok := video.Encodings[quality.Tag()]; ok && enc.URL == downloadURL && enc.FileSize > 0 {
			m.totalBytes += enc.FileSize
			continue
		}
		if size, err := m.httpClient.GetFileSize(ctx, downloadURL); err == nil {
			m.totalBytes += size
		}
	}

	if m.settings.SaveThumbnails {
		for _, video := range m.course.Videos {
			if video.HasThumbnail() {
				m.totalFiles++
			}
		}
	}
}

// StartDownloads downloads every resolved video concurrently.
func (m *Manager) StartDownloads(ctx context.Context) error {
	m.mu.RLock()
	course := m.course
	m.mu.RUnlock()

	if course == nil || len(m.downloadURLs) == 0 {
		m.progress(ProgressEvent{Message: "Nothing to download", Level: LevelInfo})
		return nil
	}

	if err := ioutils.EnsureDir(course.Path); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating directory: %v", err), Level: LevelError})
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentDownloads)

	var successCount int32
	for _, video := range course.Videos {
		downloadURL, ok := m.downloadURLs[video.ID]
		if !ok {
			continue
		}
		video := video // capture
		g.Go(func() error {
			if err := m.downloadVideo(ctx, video, downloadURL); err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading %s: %v", video.Name, err), Level: LevelError})
				return nil // Continue with other videos
			}
			atomic.AddInt32(&successCount, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if m.settings.CreatePlaylist {
		content := m.playlist.CreatePlaylist(course)
		if err := ioutils.WriteFile(course.PlaylistPath, []byte(content)); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		} else {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist for %s", course.Name), Level: LevelSuccess})
		}
	}

	if int(successCount) == len(m.downloadURLs) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Successfully downloaded course videos: %s", course.Name), Level: LevelSuccess})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Finished %s, some videos failed", course.Name), Level: LevelWarning})
	}

	return nil
}

// downloadVideo downloads one video with retries, plus its thumbnail
// when configured.
func (m *Manager) downloadVideo(ctx context.Context, video *model.VideoSummary, downloadURL string) error {
	// Check if file already exists with acceptable size
	if info, err := os.Stat(video.Path); err == nil {
		expectedSize, _ := m.httpClient.GetFileSize(ctx, downloadURL)
		diff := m.settings.AllowedFileSizeDifference
		if expectedSize > 0 {
			sizeDiff := float64(info.Size()-expectedSize) / float64(expectedSize)
			if math.Abs(sizeDiff) <= diff {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing: %s", filepath.Base(video.Path)), Level: LevelVerbose})
				atomic.AddInt32(&m.downloadedFiles, 1)
				m.ensureThumbnail(ctx, video)
				return nil
			}
		}
	}

	var err error
	var previous int64
	for tries := 0; tries < m.settings.DownloadMaxRetries; tries++ {
		previous = 0
		err = m.httpClient.DownloadFile(ctx, downloadURL, video.Path, func(written, total int64) {
			atomic.AddInt64(&m.receivedBytes, written-previous)
			previous = written
		})
		if err == nil {
			break
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, m.settings.DownloadMaxRetries, video.Name), Level: LevelWarning})
		m.waitForRetry(ctx, tries)
	}

	if err != nil {
		return err
	}

	atomic.AddInt32(&m.downloadedFiles, 1)

	if m.settings.SaveThumbnails && video.HasThumbnail() {
		if err := m.downloadThumbnail(ctx, video); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading thumbnail for %s: %v", video.Name, err), Level: LevelWarning})
		}
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded: %s", filepath.Base(video.Path)), Level: LevelVerbose})
	return nil
}

// ensureThumbnail settles the thumbnail for a video whose download was
// skipped: an existing poster file counts toward progress, a missing
// one is fetched, so totals computed up front can still be reached.
func (m *Manager) ensureThumbnail(ctx context.Context, video *model.VideoSummary) {
	if !m.settings.SaveThumbnails || !video.HasThumbnail() {
		return
	}

	if _, err := os.Stat(video.ThumbnailPath); err == nil {
		atomic.AddInt32(&m.downloadedFiles, 1)
		return
	}
	if err := m.downloadThumbnail(ctx, video); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading thumbnail for %s: %v", video.Name, err), Level: LevelWarning})
	}
}

// downloadThumbnail fetches, normalizes and saves a video's poster
// image next to the video file.
func (m *Manager) downloadThumbnail(ctx context.Context, video *model.VideoSummary) error {
	thumb, err := m.httpClient.DownloadBytes(ctx, video.ThumbnailURL)
	if err != nil {
		return err
	}

	if m.settings.ThumbnailMaxSize > 0 {
		if resized, err := m.imageService.ResizeImage(ctx, thumb, m.settings.ThumbnailMaxSize, m.settings.ThumbnailMaxSize); err == nil {
			thumb = resized
		}
	}
	if m.settings.ConvertThumbnailToJPG {
		if converted, err := m.imageService.ConvertToJPEG(ctx, thumb); err == nil {
			thumb = converted
		}
	}

	if err := ioutils.WriteFile(video.ThumbnailPath, thumb); err != nil {
		return err
	}

	atomic.AddInt32(&m.downloadedFiles, 1)
	return nil
}

// waitForRetry sleeps with exponential backoff between attempts.
func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.DownloadRetryCooldown * math.Pow(m.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

// GetProgress returns current download progress.
func (m *Manager) GetProgress() (received, total int64, filesReceived, filesTotal int32) {
	return atomic.LoadInt64(&m.receivedBytes), m.totalBytes,
		atomic.LoadInt32(&m.downloadedFiles), m.totalFiles
}

// Dates returns the course date model from the last Initialize, nil
// when none was loaded.
func (m *Manager) Dates() *model.CourseDateModel {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dates
}

// Course returns the course from the last Initialize, nil when none
// was loaded.
func (m *Manager) Course() *model.Course {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.course
}

// VideoNames returns display lines for every downloadable video.
func (m *Manager) VideoNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.course == nil {
		return nil
	}

	var names []string
	for _, video := range m.course.Videos {
		if _, ok := m.downloadURLs[video.ID]; !ok {
			continue
		}
		names = append(names, fmt.Sprintf("%s (%s)", video.Name, dateutil.FormatVideoDuration(video.Duration)))
	}
	return names
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
