package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hamzaanis/openedx-client/internal/config"
	"github.com/hamzaanis/openedx-client/internal/deeplink"
	"github.com/hamzaanis/openedx-client/internal/download"
	"github.com/hamzaanis/openedx-client/internal/i18n"
	"github.com/hamzaanis/openedx-client/internal/model"
)

// stdoutRouter prints the navigation a deep link would trigger. The
// CLI has no screen stack, so the top screen is always empty and every
// resolved link reports its destination.
type stdoutRouter struct{}

func (stdoutRouter) TopScreen() deeplink.Screen { return nil }
func (stdoutRouter) ShowLogin()                 { fmt.Println("→ login screen (link dropped)") }
func (stdoutRouter) ShowCourse(t deeplink.Type, courseID string) {
	fmt.Printf("→ course screen %q, tab %s\n", courseID, t.Tag())
}
func (stdoutRouter) SwitchCourseTab(t deeplink.Type) { fmt.Printf("→ switch tab to %s\n", t.Tag()) }
func (stdoutRouter) ShowPrograms()                   { fmt.Println("→ programs screen") }
func (stdoutRouter) ShowAccount()                    { fmt.Println("→ account screen") }
func (stdoutRouter) DismissPresented()               {}

type session struct{ loggedIn bool }

func (s session) IsLoggedIn() bool { return s.loggedIn }

func main() {
	// Command line flags
	var (
		courseFlag   = flag.String("course", "", "Course ID to fetch (e.g. course-v1:edX+DemoX+Demo_Course)")
		configFlag   = flag.String("config", "", "Path to config file")
		datesFlag    = flag.String("dates-file", "", "Load course dates from a saved JSON payload instead of the API")
		videosFlag   = flag.String("videos-file", "", "Load the video outline from a saved JSON payload instead of the API")
		outputFlag   = flag.String("output", "", "Output directory (overrides config)")
		qualityFlag  = flag.String("quality", "", "Video download quality: hls, mobile_low, mobile_high, desktop_mp4")
		downloadFlag = flag.Bool("download", false, "Download course videos after listing")
		playlistFlag = flag.Bool("playlist", false, "Create playlist file")
		linkFlag     = flag.String("link", "", "Resolve a deep link payload (query string, e.g. 'screen_name=course_videos&course_id=...')")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag   = flag.Bool("dry-run", false, "Fetch course info without downloading")
	)

	flag.Parse()

	// CLI mode - require a course or a link
	if *courseFlag == "" && *linkFlag == "" && *datesFlag == "" && *videosFlag == "" && flag.NArg() == 0 {
		fmt.Println("Open edX Client - Course dates and video downloads")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  edx-cli -course <COURSE_ID> [options]")
		fmt.Println("  edx-cli <COURSE_ID> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: edx-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.LoadDefault()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputFlag != "" {
		settings.DownloadsPath = filepath.Join(*outputFlag, "{org}", "{course}")
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}
	if *qualityFlag != "" {
		quality, ok := model.ParseDownloadQuality(*qualityFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown quality %q\n", *qualityFlag)
			os.Exit(1)
		}
		settings.SetQuality(quality)
	}

	translator, err := i18n.NewTranslator(settings.Language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading translations: %v\n", err)
		os.Exit(1)
	}

	// Deep link mode: resolve the payload and exit
	if *linkFlag != "" {
		resolveDeepLink(settings, *linkFlag)
		return
	}

	// Get course ID
	courseID := *courseFlag
	if courseID == "" && flag.NArg() > 0 {
		courseID = flag.Arg(0)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "❌ "
		case download.LevelWarning:
			prefix = "⚠️  "
		case download.LevelSuccess:
			prefix = "✅ "
		case download.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	// Initialize
	fmt.Println("🎓 Open edX Client")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if *datesFlag != "" || *videosFlag != "" {
		err = manager.InitializeFromFiles(ctx, *datesFlag, *videosFlag)
	} else {
		err = manager.Initialize(ctx, courseID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	printCourseDates(manager.Dates(), translator)

	if !*downloadFlag || *dryRunFlag {
		if *dryRunFlag {
			fmt.Println("\n[Dry run - not downloading]")
		}
		return
	}

	// Start downloads
	fmt.Println("\n📥 Starting downloads...")
	fmt.Println()

	if err := manager.StartDownloads(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during download: %v\n", err)
		os.Exit(1)
	}

	received, total, filesReceived, filesTotal := manager.GetProgress()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Downloaded %d/%d files (%.2f MB)\n", filesReceived, filesTotal, float64(received)/1024/1024)
	if total > 0 && received < total {
		fmt.Printf("   (%.2f MB expected)\n", float64(total)/1024/1024)
	}
}

// resolveDeepLink parses a query-string payload and routes it the way
// the app would on a push notification tap.
func resolveDeepLink(settings *config.Settings, payload string) {
	values, err := url.ParseQuery(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing link payload: %v\n", err)
		os.Exit(1)
	}

	params := make(map[string]string, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}

	router := stdoutRouter{}
	resolver := deeplink.NewResolver(
		session{loggedIn: settings.AccessToken != ""},
		settings,
		router,
		router,
	)
	resolver.Resolve(params)
}

// printCourseDates lists the course date blocks with their status.
func printCourseDates(dates *model.CourseDateModel, translator *i18n.Translator) {
	if dates == nil || len(dates.Blocks) == 0 {
		return
	}

	fmt.Println("\n📅 Important dates:")
	if banner := translator.BannerMessage(dates.BannerStatus()); banner != "" {
		fmt.Printf("   ⚠️  %s\n", banner)
	}
	for _, block := range dates.Blocks {
		fmt.Printf("   %-28s [%s] %s\n",
			block.DateText,
			translator.StatusLabel(block.Status()),
			block.Title,
		)
	}
}
