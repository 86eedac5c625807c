package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeyClose           = "close"
	KeyConfirmClose    = "confirm_close"
	KeyPrevious        = "previous"
	KeyPlayPause       = "play_pause"
	KeyNext            = "next"
	KeyError           = "error"
	KeyLaunchFailed    = "launch_failed"
	KeyMediaFailed     = "media_failed"
	KeySettingsSaved   = "settings_saved"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyGeneral         = "general"
	KeyApps            = "apps"
	KeyMusicControls   = "music_controls"
	KeyCollapseDelay   = "collapse_delay"
	KeyExpandedWidth   = "expanded_width"
	KeyLanguage        = "language"
	KeyHotkey          = "hotkey"
	KeyConfirmExit     = "confirm_exit"
	KeyAdd             = "add"
	KeyEdit            = "edit"
	KeyRemove          = "remove"
	KeyToggle          = "toggle"
	KeyConfirmRemove   = "confirm_remove"
	KeyNoSelection     = "no_selection"
	KeyAppEditor       = "app_editor"
	KeyName            = "name"
	KeyType            = "type"
	KeyURL             = "url"
	KeyPath            = "path"
	KeyBrowse          = "browse"
	KeyScan            = "scan"
	KeyColor           = "color"
	KeyChooseColor     = "choose_color"
	KeyIcon            = "icon"
	KeyEnabled         = "enabled"
	KeyTypeLocal       = "type_local"
	KeyTypeURL         = "type_url"
	KeyTypeSpecial     = "type_special"
	KeySearch          = "search"
	KeyInstalledApps   = "installed_apps"
	KeyNameRequired    = "name_required"
	KeyInvalidColor    = "invalid_color"
	KeyReloadFailed    = "reload_failed"
	KeySaveFailed      = "save_failed"
	KeyHotkeyRestart   = "hotkey_restart"
	KeyMusicPlayerName = "music_player_name"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the OS locale.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

func systemLanguage() string {
	tag := lang.SystemLocale().LanguageString()
	code, _, _ := strings.Cut(tag, "-")
	return strings.ToLower(code)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args applied
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Dynamic Island",
		KeySettings:        "Settings",
		KeyClose:           "Close Dynamic Island",
		KeyConfirmClose:    "Do you really want to quit Dynamic Island?",
		KeyPrevious:        "Previous",
		KeyPlayPause:       "Play/Pause",
		KeyNext:            "Next",
		KeyError:           "Error",
		KeyLaunchFailed:    "Could not open %s",
		KeyMediaFailed:     "Media control failed",
		KeySettingsSaved:   "Settings saved!",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyGeneral:         "General",
		KeyApps:            "Apps",
		KeyMusicControls:   "Enable music controls",
		KeyCollapseDelay:   "Auto-collapse delay",
		KeyExpandedWidth:   "Expanded width",
		KeyLanguage:        "Language",
		KeyHotkey:          "Toggle with Ctrl+1",
		KeyConfirmExit:     "Confirm before closing",
		KeyAdd:             "Add",
		KeyEdit:            "Edit",
		KeyRemove:          "Remove",
		KeyToggle:          "Enable/Disable",
		KeyConfirmRemove:   "Remove %s?",
		KeyNoSelection:     "Select an app first",
		KeyAppEditor:       "App",
		KeyName:            "Name",
		KeyType:            "Type",
		KeyURL:             "URL",
		KeyPath:            "Path or command",
		KeyBrowse:          "Browse",
		KeyScan:            "Installed apps",
		KeyColor:           "Color",
		KeyChooseColor:     "Choose",
		KeyIcon:            "Icon (emoji)",
		KeyEnabled:         "Enabled",
		KeyTypeLocal:       "Local app",
		KeyTypeURL:         "Website",
		KeyTypeSpecial:     "Special",
		KeySearch:          "Search...",
		KeyInstalledApps:   "Installed applications",
		KeyNameRequired:    "Name is required",
		KeyInvalidColor:    "Color must look like #RRGGBB",
		KeyReloadFailed:    "Configuration could not be read, defaults are in use",
		KeySaveFailed:      "Could not save settings",
		KeyHotkeyRestart:   "Hotkey changes take effect after a restart.",
		KeyMusicPlayerName: "Music Player",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Dynamic Island",
		KeySettings:        "Configurações",
		KeyClose:           "Fechar Dynamic Island",
		KeyConfirmClose:    "Deseja realmente encerrar o Dynamic Island?",
		KeyPrevious:        "Anterior",
		KeyPlayPause:       "Play/Pause",
		KeyNext:            "Próxima",
		KeyError:           "Erro",
		KeyLaunchFailed:    "Erro ao abrir %s",
		KeyMediaFailed:     "Erro ao controlar mídia",
		KeySettingsSaved:   "As configurações foram salvas!",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyGeneral:         "Geral",
		KeyApps:            "Aplicativos",
		KeyMusicControls:   "Ativar controles de música",
		KeyCollapseDelay:   "Tempo para recolher",
		KeyExpandedWidth:   "Largura expandida",
		KeyLanguage:        "Idioma",
		KeyHotkey:          "Alternar com Ctrl+1",
		KeyConfirmExit:     "Confirmar antes de fechar",
		KeyAdd:             "Adicionar",
		KeyEdit:            "Editar",
		KeyRemove:          "Remover",
		KeyToggle:          "Ativar/Desativar",
		KeyConfirmRemove:   "Remover %s?",
		KeyNoSelection:     "Selecione um aplicativo primeiro",
		KeyAppEditor:       "Aplicativo",
		KeyName:            "Nome",
		KeyType:            "Tipo",
		KeyURL:             "URL",
		KeyPath:            "Caminho ou comando",
		KeyBrowse:          "Procurar",
		KeyScan:            "Apps instalados",
		KeyColor:           "Cor",
		KeyChooseColor:     "Escolher",
		KeyIcon:            "Ícone (emoji)",
		KeyEnabled:         "Ativado",
		KeyTypeLocal:       "App local",
		KeyTypeURL:         "Site",
		KeyTypeSpecial:     "Especial",
		KeySearch:          "Buscar...",
		KeyInstalledApps:   "Aplicativos instalados",
		KeyNameRequired:    "O nome é obrigatório",
		KeyInvalidColor:    "A cor deve estar no formato #RRGGBB",
		KeyReloadFailed:    "Não foi possível ler a configuração, usando padrões",
		KeySaveFailed:      "Não foi possível salvar as configurações",
		KeyHotkeyRestart:   "Reinicie o Dynamic Island para aplicar a tecla de atalho.",
		KeyMusicPlayerName: "Music Player",
	}
}
