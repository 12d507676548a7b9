package gui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/schooltrans/internal"
	"codeberg.org/snonux/schooltrans/internal/translation"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	textInput      *CustomMultiLineEntry
	languageSelect *widget.Select
	translateBtn   *ttwidget.Button
	resultHeading  *widget.Label
	resultOutput   *widget.Entry
	statusLabel    *widget.Label
	progress       *widget.ProgressBarInfinite

	// Translation backend
	service *translation.Service

	// State management
	mu          sync.Mutex
	translating bool

	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds GUI application configuration
type Config struct {
	Service *translation.Service

	// DefaultTarget preselects a language in the dropdown, by catalog code.
	DefaultTarget string
}

// New creates a new GUI application
func New(config *Config) *Application {
	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("org.codeberg.snonux.schooltrans")

	a := &Application{
		app:     myApp,
		service: config.Service,
		ctx:     ctx,
		cancel:  cancel,
	}

	a.setupUI(config.DefaultTarget)

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI(defaultTarget string) {
	a.window = a.app.NewWindow(fmt.Sprintf("SchoolTrans v%s - School Communications Translator", internal.Version))
	a.window.Resize(fyne.NewSize(700, 600))

	title := widget.NewLabelWithStyle("Hage PTA Translator", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabel("Translate school communications.\n" +
		"Traducir folletos o comunicaciones escolares.\n" +
		"Dịch tờ rơi hoặc thông tin liên lạc của trường.\n" +
		"Isalin ang mga flyer ng paaralan o komunikasyon.")
	subtitle.Alignment = fyne.TextAlignCenter

	// Create the text input
	a.textInput = NewCustomMultiLineEntry()
	a.textInput.SetPlaceHolder("Enter the text to translate... e.g., 'Dear Parents, tomorrow is a half-day.'")
	a.textInput.SetOnSubmit(a.onTranslate)
	a.textInput.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})

	// Create the language dropdown from the fixed catalog
	a.languageSelect = widget.NewSelect(translation.LanguageNames(), nil)
	selected := translation.Languages[0].Name
	if name, ok := translation.NameForCode(defaultTarget); ok {
		selected = name
	}
	a.languageSelect.SetSelected(selected)

	// Create the translate button (tooltip is set after the tooltip layer exists)
	a.translateBtn = ttwidget.NewButtonWithIcon("Translate", theme.ConfirmIcon(), a.onTranslate)
	a.translateBtn.Importance = widget.HighImportance

	controls := container.NewBorder(
		nil, nil,
		widget.NewLabel("Target language:"),
		a.translateBtn,
		a.languageSelect,
	)

	// Create the result section
	a.resultHeading = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.resultOutput = widget.NewMultiLineEntry()
	a.resultOutput.Wrapping = fyne.TextWrapWord
	resultScroll := container.NewScroll(a.resultOutput)
	resultScroll.SetMinSize(fyne.NewSize(0, 180))

	// Create the status section
	a.statusLabel = widget.NewLabel("Ready")
	a.progress = widget.NewProgressBarInfinite()
	a.progress.Hide()

	statusSection := container.NewVBox(
		a.progress,
		widget.NewSeparator(),
		a.statusLabel,
	)

	// Combine all sections
	content := container.NewBorder(
		container.NewVBox(
			title,
			subtitle,
			widget.NewSeparator(),
		),
		statusSection,
		nil, nil,
		container.NewVSplit(
			container.NewScroll(a.textInput),
			container.NewBorder(
				container.NewVBox(controls, a.resultHeading),
				nil, nil, nil,
				resultScroll,
			),
		),
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	a.translateBtn.SetToolTip("Translate the text (Ctrl+Enter)")

	a.window.SetOnClosed(func() {
		a.cancel()
	})
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// onTranslate handles the translate action
func (a *Application) onTranslate() {
	text := strings.TrimSpace(a.textInput.Text)
	if text == "" {
		a.updateStatus("Please enter some text to translate.")
		return
	}

	languageName := a.languageSelect.Selected
	code, ok := translation.CodeForName(languageName)
	if !ok {
		a.updateStatus("Please select a target language.")
		return
	}

	a.mu.Lock()
	if a.translating {
		// A request is already in flight, ignore the trigger
		a.mu.Unlock()
		return
	}
	a.translating = true
	a.mu.Unlock()

	a.setPending()

	go func() {
		translated, err := a.service.Translate(a.ctx, text, code)

		fyne.Do(func() {
			a.setIdle()

			if err != nil {
				a.resultHeading.SetText("")
				a.resultOutput.SetText("")
				a.updateStatus(fmt.Sprintf("Translation failed: %v", err))
				return
			}

			a.resultHeading.SetText(fmt.Sprintf("Translated Text (%s)", languageName))
			a.resultOutput.SetText(translated)
			a.updateStatus("Ready")
		})

		a.mu.Lock()
		a.translating = false
		a.mu.Unlock()
	}()
}

// setPending switches the UI into the in-flight state
func (a *Application) setPending() {
	a.translateBtn.Disable()
	a.progress.Show()
	a.progress.Start()
	a.updateStatus("Translating...")
}

// setIdle switches the UI back to the idle state
func (a *Application) setIdle() {
	a.progress.Stop()
	a.progress.Hide()
	a.translateBtn.Enable()
}

// updateStatus updates the status label
func (a *Application) updateStatus(status string) {
	a.statusLabel.SetText(status)
}
