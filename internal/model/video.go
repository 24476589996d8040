package model

// DownloadQuality is the learner's preferred rendition for video
// downloads. The preference is persisted under its wire tag; Auto
// means "pick the smallest usable encoding".
type DownloadQuality int

const (
	QualityAuto       DownloadQuality = iota
	QualityMobileLow                  // 640 x 360
	QualityMobileHigh                 // 960 x 540
	QualityDesktop                    // 1280 x 720
)

// Tag returns the stable wire value the preference is persisted under.
func (q DownloadQuality) Tag() string {
	switch q {
	case QualityMobileLow:
		return "mobile_low"
	case QualityMobileHigh:
		return "mobile_high"
	case QualityDesktop:
		return "desktop_mp4"
	default:
		return "hls"
	}
}

// AnalyticsLabel returns the short label used when reporting the
// preference: auto, 360p, 540p or 720p.
func (q DownloadQuality) AnalyticsLabel() string {
	switch q {
	case QualityMobileLow:
		return "360p"
	case QualityMobileHigh:
		return "540p"
	case QualityDesktop:
		return "720p"
	default:
		return "auto"
	}
}

// ParseDownloadQuality converts a wire tag back into a quality value.
// The boolean result is false for unknown tags.
func ParseDownloadQuality(tag string) (DownloadQuality, bool) {
	switch tag {
	case "hls":
		return QualityAuto, true
	case "mobile_low":
		return QualityMobileLow, true
	case "mobile_high":
		return QualityMobileHigh, true
	case "desktop_mp4":
		return QualityDesktop, true
	default:
		return QualityAuto, false
	}
}

// QualityEncodings is the concrete download tiers in ascending size
// order. This is also the search order used for the Auto preference.
func QualityEncodings() []DownloadQuality {
	return []DownloadQuality{QualityMobileLow, QualityMobileHigh, QualityDesktop}
}

// fallbackOrder is the tier search order when the preferred quality is
// unavailable or yields no usable URL.
func (q DownloadQuality) fallbackOrder() []DownloadQuality {
	switch q {
	case QualityDesktop:
		return []DownloadQuality{QualityMobileHigh, QualityMobileLow}
	case QualityMobileHigh:
		return []DownloadQuality{QualityMobileLow, QualityDesktop}
	case QualityMobileLow:
		return []DownloadQuality{QualityMobileHigh, QualityDesktop}
	default:
		return QualityEncodings()
	}
}

// VideoEncoding is one named rendition of a video with its own
// download URL, as reported by the video outline.
type VideoEncoding struct {
	// Name is the encoding tag, e.g. "mobile_low" or "desktop_mp4".
	Name string

	// URL is the download location. Empty when the rendition exists
	// but has no file behind it.
	URL string

	// FileSize is the reported size in bytes, zero when unknown.
	FileSize int64
}

// URLPredicate decides whether a URL points at a downloadable file.
// The shape check (scheme, extension) lives with the caller; the
// selector only uses the verdict.
type URLPredicate func(url string) bool

// VideoSummary describes one course video: its renditions, the legacy
// source list, and where the downloaded file will be stored.
//
// Example:
//
//	url, ok := video.DownloadURL(true, model.QualityMobileHigh, isDownloadable)
//	if !ok {
//	    // nothing to download for this video; not an error
//	}
type VideoSummary struct {
	// ID is the video's block identifier.
	ID string

	// Name is the display title.
	Name string

	// Number is the 1-indexed position within the course outline.
	Number int

	// Duration is the video length in seconds.
	Duration float64

	// VideoURL is the primary stream URL used when the encoding
	// pipeline is disabled.
	VideoURL string

	// AllSources is the legacy fallback source list.
	AllSources []string

	// SupportedEncodings is the set of encoding tags the server
	// supports for this video.
	SupportedEncodings []string

	// Encodings maps encoding tags to their descriptors.
	Encodings map[string]VideoEncoding

	// ThumbnailURL is the poster image, empty when none exists.
	ThumbnailURL string

	// Path is the computed local file path for the download.
	Path string

	// ThumbnailPath is the computed local file path for the poster
	// image. Empty if the video has no thumbnail.
	ThumbnailPath string
}

// HasThumbnail returns true if the video has a poster image available
// for download.
func (v *VideoSummary) HasThumbnail() bool {
	return v.ThumbnailURL != ""
}

// DownloadURL resolves the URL to download this video from.
//
// With the encoding pipeline enabled, the preferred quality is resolved
// against the renditions that are both server-supported and present in
// the descriptor map, falling back across tiers when the preferred one
// has no usable URL. Without the pipeline, the primary video URL wins
// when downloadable, then the first downloadable legacy source.
//
// The boolean result is false when no candidate yields a usable URL;
// callers treat that as "nothing to download", not as an error.
func (v *VideoSummary) DownloadURL(usePipeline bool, preferred DownloadQuality, downloadable URLPredicate) (string, bool) {
	if usePipeline {
		return v.preferredDownloadURL(preferred, downloadable)
	}

	if v.VideoURL != "" && downloadable(v.VideoURL) {
		return v.VideoURL, true
	}
	for _, source := range v.AllSources {
		if downloadable(source) {
			return source, true
		}
	}
	return "", false
}

// preferredDownloadURL implements the quality-preference resolution
// over the candidate encoding set.
func (v *VideoSummary) preferredDownloadURL(preferred DownloadQuality, downloadable URLPredicate) (string, bool) {
	candidates := v.candidateEncodings()

	if _, ok := candidates[preferred.Tag()]; ok {
		if preferred == QualityAuto {
			return v.firstCandidateURL(QualityEncodings(), candidates, downloadable)
		}
		if url, ok := v.encodingURL(preferred, downloadable); ok {
			return url, true
		}
	}

	return v.firstCandidateURL(preferred.fallbackOrder(), candidates, downloadable)
}

// candidateEncodings restricts the descriptor map to encodings the
// server reports as supported.
func (v *VideoSummary) candidateEncodings() map[string]VideoEncoding {
	candidates := make(map[string]VideoEncoding)
	for _, name := range v.SupportedEncodings {
		if enc, ok := v.Encodings[name]; ok {
			candidates[name] = enc
		}
	}
	return candidates
}

// encodingURL returns the downloadable URL for one quality tier, if any.
func (v *VideoSummary) encodingURL(quality DownloadQuality, downloadable URLPredicate) (string, bool) {
	enc, ok := v.Encodings[quality.Tag()]
	if !ok || enc.URL == "" || !downloadable(enc.URL) {
		return "", false
	}
	return enc.URL, true
}

// firstCandidateURL walks an ordered tier list and returns the first
// candidate with a downloadable URL.
func (v *VideoSummary) firstCandidateURL(order []DownloadQuality, candidates map[string]VideoEncoding, downloadable URLPredicate) (string, bool) {
	for _, quality := range order {
		if _, ok := candidates[quality.Tag()]; !ok {
			continue
		}
		if url, ok := v.encodingURL(quality, downloadable); ok {
			return url, true
		}
	}
	return "", false
}
