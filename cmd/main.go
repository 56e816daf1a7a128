package main

import (
	"errors"
	"fmt"
	"os"

	"stickyswitch/internal/core/host"
	"stickyswitch/internal/core/model"
	"stickyswitch/internal/platform"
	"stickyswitch/internal/storage"
	"stickyswitch/internal/ui/preferences"
	"stickyswitch/internal/ui/screen"
	"stickyswitch/internal/ui/stickyswitch"
	"stickyswitch/internal/ui/tray"
	"stickyswitch/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/sirupsen/logrus"
)

const appName = "StickySwitch"

func main() {
	logger := newLogger()
	if err := run(logger); err != nil {
		logger.WithError(err).Fatal("stickyswitch stopped")
	}
}

// run owns every resource that must be released before the process exits.
func run(logger *logrus.Logger) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("another instance is running, asked it to come to the front")
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.WithError(err).Warn("load settings, using defaults")
	}
	applyLogLevel(logger, settings.LogLevel)

	fyneApp := app.NewWithID("io.stickyswitch.demo")
	logo := resources.MustIcon("logo.svg")
	fyneApp.SetIcon(logo)

	baseStyle := stickyswitch.DefaultStyle()
	baseStyle.LeftIcon = resources.MustIcon("left.svg")
	baseStyle.RightIcon = resources.MustIcon("right.svg")

	sticky, mainLayout, err := newMainScreen(logger, settings.Style(baseStyle), settings.Initial)
	if err != nil {
		return err
	}
	defer sticky.Close()

	window := fyneApp.NewWindow(appName)
	window.SetContent(mainLayout.Content())
	window.Resize(fyne.NewSize(360, 240))
	window.SetMaster()

	guard.SetOnActivate(func() {
		fyne.Do(func() {
			window.Show()
			window.RequestFocus()
		})
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		applyLogLevel(logger, settings.LogLevel)
		sticky.SetStyle(settings.Style(baseStyle))
		if err := storage.SaveSettings(appName, settings); err != nil {
			logger.WithError(err).Warn("save settings")
		}
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, appName, tray.Callbacks{
			OnSelect: func(direction model.Direction) {
				sticky.SetDirection(direction, true, true)
			},
			OnShow: func() {
				window.Show()
				window.RequestFocus()
			},
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		trayManager.SetSelection(sticky.Direction())
		desktopApp.SetSystemTrayIcon(logo)

		events := sticky.Subscribe(4)
		go func() {
			for event := range events {
				direction := event.Direction
				fyne.Do(func() {
					trayManager.SetSelection(direction)
				})
			}
		}()

		window.SetCloseIntercept(window.Hide)
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	window.ShowAndRun()
	return nil
}

// newMainScreen renders the main layout and subscribes the host screen.
func newMainScreen(logger logrus.FieldLogger, style stickyswitch.Style, initial model.Direction) (*stickyswitch.StickySwitch, *screen.Layout, error) {
	sticky := stickyswitch.New(style, initial)
	mainLayout := screen.NewMain(appName, sticky)
	if err := host.New(host.LogrusSink(logger)).Initialize(mainLayout); err != nil {
		sticky.Close()
		return nil, nil, fmt.Errorf("initialize main screen: %w", err)
	}
	return sticky, mainLayout, nil
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func applyLogLevel(logger *logrus.Logger, name string) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		logger.WithField("level", name).Warn("unknown log level, keeping debug")
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
}
