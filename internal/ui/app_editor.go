package ui

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ytget/dynamic-island/internal/model"
	"github.com/ytget/dynamic-island/internal/platform"
)

// AppEditor edits one app entry in a form dialog
type AppEditor struct {
	localization *Localization
	scanner      AppScanner
	window       fyne.Window
	entry        model.AppEntry
	onSubmit     func(model.AppEntry)

	nameEntry    *widget.Entry
	kindSelect   *widget.Select
	urlEntry     *widget.Entry
	pathEntry    *widget.Entry
	colorEntry   *widget.Entry
	colorPreview *canvas.Rectangle
	iconEntry    *widget.Entry
	enabledCheck *widget.Check

	kinds map[string]model.AppKind
}

// NewAppEditor prepares an editor for entry; onSubmit receives the edited copy
func NewAppEditor(l *Localization, scanner AppScanner, window fyne.Window, entry model.AppEntry, onSubmit func(model.AppEntry)) *AppEditor {
	e := &AppEditor{
		localization: l,
		scanner:      scanner,
		window:       window,
		entry:        entry,
		onSubmit:     onSubmit,
	}
	e.createUI()
	e.load()
	return e
}

func (e *AppEditor) createUI() {
	l := e.localization

	e.nameEntry = widget.NewEntry()
	e.nameEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(l.GetText(KeyNameRequired))
		}
		return nil
	}

	e.kinds = map[string]model.AppKind{
		l.GetText(KeyTypeLocal):   model.KindLocal,
		l.GetText(KeyTypeURL):     model.KindURL,
		l.GetText(KeyTypeSpecial): model.KindSpecial,
	}
	labels := make([]string, 0, len(model.Kinds()))
	for _, k := range model.Kinds() {
		labels = append(labels, e.kindLabel(k))
	}
	e.kindSelect = widget.NewSelect(labels, func(string) { e.updateFields() })

	e.urlEntry = widget.NewEntry()
	e.urlEntry.SetPlaceHolder("https://")

	e.pathEntry = widget.NewEntry()
	e.pathEntry.SetPlaceHolder("C:\\Program Files\\App\\app.exe")

	e.colorPreview = canvas.NewRectangle(HexColor(model.DefaultEntryColor))
	e.colorPreview.SetMinSize(fyne.NewSize(ColorPreviewSize, ColorPreviewSize))
	e.colorPreview.CornerRadius = ColorPreviewSize / 2
	e.colorEntry = widget.NewEntry()
	e.colorEntry.Validator = func(s string) error {
		if _, err := colorful.Hex(strings.TrimSpace(s)); err != nil {
			return errors.New(l.GetText(KeyInvalidColor))
		}
		return nil
	}
	e.colorEntry.OnChanged = func(s string) {
		e.colorPreview.FillColor = HexColor(strings.TrimSpace(s))
		e.colorPreview.Refresh()
	}

	e.iconEntry = widget.NewEntry()
	e.iconEntry.SetPlaceHolder(model.DefaultEntryIcon)

	e.enabledCheck = widget.NewCheck(l.GetText(KeyEnabled), nil)
}

func (e *AppEditor) kindLabel(k model.AppKind) string {
	switch k {
	case model.KindURL:
		return e.localization.GetText(KeyTypeURL)
	case model.KindSpecial:
		return e.localization.GetText(KeyTypeSpecial)
	default:
		return e.localization.GetText(KeyTypeLocal)
	}
}

func (e *AppEditor) load() {
	e.nameEntry.SetText(e.entry.Name)
	e.kindSelect.SetSelected(e.kindLabel(e.entry.Kind))
	e.urlEntry.SetText(e.entry.URL)
	e.pathEntry.SetText(e.entry.Path)
	c := e.entry.Color
	if c == "" {
		c = model.DefaultEntryColor
	}
	e.colorEntry.SetText(c)
	e.iconEntry.SetText(e.entry.CustomIcon)
	e.enabledCheck.SetChecked(e.entry.Enabled)
	e.updateFields()
}

func (e *AppEditor) kind() model.AppKind {
	if k, ok := e.kinds[e.kindSelect.Selected]; ok {
		return k
	}
	return model.KindLocal
}

// updateFields enables only the target field that matches the kind
func (e *AppEditor) updateFields() {
	switch e.kind() {
	case model.KindURL:
		e.urlEntry.Enable()
		e.pathEntry.Disable()
	case model.KindLocal:
		e.urlEntry.Disable()
		e.pathEntry.Enable()
	default:
		e.urlEntry.Disable()
		e.pathEntry.Disable()
		if strings.TrimSpace(e.nameEntry.Text) == "" {
			e.nameEntry.SetText(e.localization.GetText(KeyMusicPlayerName))
		}
	}
}

// Result builds the edited entry. The target field that does not match the
// kind is cleared.
func (e *AppEditor) Result() (model.AppEntry, error) {
	name := strings.TrimSpace(e.nameEntry.Text)
	if name == "" {
		return model.AppEntry{}, errors.New(e.localization.GetText(KeyNameRequired))
	}
	hex := strings.TrimSpace(e.colorEntry.Text)
	if _, err := colorful.Hex(hex); err != nil {
		return model.AppEntry{}, errors.New(e.localization.GetText(KeyInvalidColor))
	}

	out := model.AppEntry{
		Name:       name,
		Kind:       e.kind(),
		Enabled:    e.enabledCheck.Checked,
		Color:      hex,
		CustomIcon: strings.TrimSpace(e.iconEntry.Text),
		IconName:   model.IconNameFor(name),
	}
	switch out.Kind {
	case model.KindURL:
		out.URL = strings.TrimSpace(e.urlEntry.Text)
	case model.KindLocal:
		out.Path = strings.TrimSpace(e.pathEntry.Text)
	}
	return out, nil
}

// Show displays the editor
func (e *AppEditor) Show() {
	l := e.localization

	browse := widget.NewButton(l.GetText(KeyBrowse), e.onBrowse)
	scan := widget.NewButton(IconScan+" "+l.GetText(KeyScan), e.onScan)
	pathRow := container.NewBorder(nil, nil, nil, container.NewHBox(browse, scan), e.pathEntry)

	choose := widget.NewButton(l.GetText(KeyChooseColor), e.onChooseColor)
	colorRow := container.NewBorder(nil, nil, e.colorPreview, choose, e.colorEntry)

	items := []*widget.FormItem{
		widget.NewFormItem(l.GetText(KeyName), e.nameEntry),
		widget.NewFormItem(l.GetText(KeyType), e.kindSelect),
		widget.NewFormItem(l.GetText(KeyURL), e.urlEntry),
		widget.NewFormItem(l.GetText(KeyPath), pathRow),
		widget.NewFormItem(l.GetText(KeyColor), colorRow),
		widget.NewFormItem(l.GetText(KeyIcon), e.iconEntry),
		widget.NewFormItem("", e.enabledCheck),
	}
	d := dialog.NewForm(l.GetText(KeyAppEditor), l.GetText(KeySave), l.GetText(KeyCancel), items, e.onConfirm, e.window)
	d.Resize(fyne.NewSize(SettingsWindowWidth-WindowPadding, 0))
	d.Show()
}

func (e *AppEditor) onConfirm(ok bool) {
	if !ok {
		return
	}
	entry, err := e.Result()
	if err != nil {
		dialog.ShowError(err, e.window)
		return
	}
	if e.onSubmit != nil {
		e.onSubmit(entry)
	}
}

func (e *AppEditor) onBrowse() {
	dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		defer r.Close()
		e.pathEntry.SetText(r.URI().Path())
	}, e.window)
}

func (e *AppEditor) onChooseColor() {
	picker := dialog.NewColorPicker(e.localization.GetText(KeyColor), "", func(c color.Color) {
		e.colorEntry.SetText(ColorHex(c))
	}, e.window)
	picker.Advanced = true
	picker.SetColor(HexColor(e.colorEntry.Text))
	picker.Show()
}

// onScan lists installed applications; picking one fills name and path
func (e *AppEditor) onScan() {
	if e.scanner == nil {
		return
	}
	l := e.localization

	var all, shown []platform.InstalledApp
	info := widget.NewLabel("")
	list := widget.NewList(
		func() int { return len(shown) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(shown[id].Name)
		},
	)
	search := widget.NewEntry()
	search.SetPlaceHolder(l.GetText(KeySearch))
	search.OnChanged = func(q string) {
		shown = FilterApps(all, q)
		info.SetText(formatCount(len(shown), len(all)))
		list.UnselectAll()
		list.Refresh()
	}

	var d dialog.Dialog
	list.OnSelected = func(id widget.ListItemID) {
		app := shown[id]
		e.nameEntry.SetText(app.Name)
		e.pathEntry.SetText(app.Path)
		e.kindSelect.SetSelected(e.kindLabel(model.KindLocal))
		d.Hide()
	}

	listArea := container.NewGridWrap(fyne.NewSize(SettingsWindowWidth-3*WindowPadding, ScanListHeight), list)
	content := container.NewBorder(container.NewVBox(search, info), nil, nil, nil, listArea)
	d = dialog.NewCustom(l.GetText(KeyInstalledApps), l.GetText(KeyCancel), content, e.window)
	d.Show()
	e.window.Canvas().Focus(search)

	go func() {
		apps := e.scanner.Scan()
		fyne.Do(func() {
			all = apps
			search.OnChanged(search.Text)
		})
	}()
}

// FilterApps keeps the apps whose name contains q, ignoring case
func FilterApps(apps []platform.InstalledApp, q string) []platform.InstalledApp {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return apps
	}
	out := make([]platform.InstalledApp, 0, len(apps))
	for _, a := range apps {
		if strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
	}
	return out
}

func formatCount(shown, total int) string {
	return fmt.Sprintf("%s %d / %d", IconScan, shown, total)
}
