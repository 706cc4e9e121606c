package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyBannerTitle       = "banner_title"
	KeyChooseLocation    = "choose_location"
	KeyLocationFormat    = "location_format"
	KeyNotSelected       = "not_selected"
	KeyEnterURL          = "enter_url"
	KeyURLPlaceholder    = "url_placeholder"
	KeySelectQuality     = "select_quality"
	KeyDownload          = "download"
	KeyStarting          = "starting"
	KeyProgressFormat    = "progress_format"
	KeyProcessing        = "processing"
	KeyDownloadCompleted = "download_completed"
	KeyDownloadFailed    = "download_failed"
	KeySuccessTitle      = "success_title"
	KeyErrorTitle        = "error_title"
	KeyErrorOccurred     = "error_occurred"
	KeyShowInFolder      = "show_in_folder"
	KeyOK                = "ok"
	KeyErrorOpeningFile  = "error_opening_file"

	KeyMergeToolMissing   = "merge_tool_missing"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyPleaseChooseFolder = "please_choose_folder"
	KeyFolderMissing      = "folder_missing"
	KeyInvalidQuality     = "invalid_quality"
	KeyDownloadRunning    = "download_running"

	KeySettings      = "settings"
	KeyFile          = "file"
	KeyLanguage      = "language"
	KeyMergeToolPath = "merge_tool_path"
	KeyMergeToolHint = "merge_tool_hint"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeyBrowse        = "browse"
	KeySettingsSaved = "settings_saved"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
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

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YouTube Downloader",
		KeyBannerTitle:       "YouTube Video Downloader",
		KeyChooseLocation:    "Choose Download Location",
		KeyLocationFormat:    "Download Location: %s",
		KeyNotSelected:       "Not selected",
		KeyEnterURL:          "Enter YouTube URL:",
		KeyURLPlaceholder:    "https://www.youtube.com/watch?v=...",
		KeySelectQuality:     "Select Video Quality:",
		KeyDownload:          "Download Video",
		KeyStarting:          "Starting download...",
		KeyProgressFormat:    "Downloaded: %s at %s, ETA: %s",
		KeyProcessing:        "Download complete! Processing video...",
		KeyDownloadCompleted: "Download completed!",
		KeyDownloadFailed:    "Download failed",
		KeySuccessTitle:      "Success",
		KeyErrorTitle:        "Error",
		KeyErrorOccurred:     "An error occurred: %v",
		KeyShowInFolder:      "Show in folder",
		KeyOK:                "OK",
		KeyErrorOpeningFile:  "Error opening file",

		KeyMergeToolMissing:   "ffmpeg is required for merging formats but is not installed.",
		KeyPleaseEnterURL:     "Please enter a YouTube URL.",
		KeyPleaseChooseFolder: "Please choose a download location.",
		KeyFolderMissing:      "The download location does not exist.",
		KeyInvalidQuality:     "Please select a video quality from the list.",
		KeyDownloadRunning:    "A download is already running.",

		KeySettings:      "Settings",
		KeyFile:          "File",
		KeyLanguage:      "Language",
		KeyMergeToolPath: "ffmpeg location",
		KeyMergeToolHint: "Leave empty to search PATH",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeyBrowse:        "Browse",
		KeySettingsSaved: "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YouTube Загрузчик",
		KeyBannerTitle:       "Загрузчик видео YouTube",
		KeyChooseLocation:    "Выбрать папку загрузки",
		KeyLocationFormat:    "Папка загрузки: %s",
		KeyNotSelected:       "Не выбрана",
		KeyEnterURL:          "Введите URL YouTube:",
		KeyURLPlaceholder:    "https://www.youtube.com/watch?v=...",
		KeySelectQuality:     "Выберите качество видео:",
		KeyDownload:          "Скачать видео",
		KeyStarting:          "Начало загрузки...",
		KeyProgressFormat:    "Загружено: %s со скоростью %s, осталось: %s",
		KeyProcessing:        "Загрузка завершена! Обработка видео...",
		KeyDownloadCompleted: "Загрузка завершена!",
		KeyDownloadFailed:    "Ошибка загрузки",
		KeySuccessTitle:      "Готово",
		KeyErrorTitle:        "Ошибка",
		KeyErrorOccurred:     "Произошла ошибка: %v",
		KeyShowInFolder:      "Показать в папке",
		KeyOK:                "OK",
		KeyErrorOpeningFile:  "Ошибка открытия файла",

		KeyMergeToolMissing:   "Для объединения форматов нужен ffmpeg, но он не установлен.",
		KeyPleaseEnterURL:     "Пожалуйста, введите URL YouTube.",
		KeyPleaseChooseFolder: "Пожалуйста, выберите папку загрузки.",
		KeyFolderMissing:      "Папка загрузки не существует.",
		KeyInvalidQuality:     "Выберите качество видео из списка.",
		KeyDownloadRunning:    "Загрузка уже выполняется.",

		KeySettings:      "Настройки",
		KeyFile:          "Файл",
		KeyLanguage:      "Язык",
		KeyMergeToolPath: "Расположение ffmpeg",
		KeyMergeToolHint: "Оставьте пустым для поиска в PATH",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeyBrowse:        "Обзор",
		KeySettingsSaved: "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YouTube Downloader",
		KeyBannerTitle:       "Baixador de Vídeos do YouTube",
		KeyChooseLocation:    "Escolher Local de Download",
		KeyLocationFormat:    "Local de Download: %s",
		KeyNotSelected:       "Não selecionado",
		KeyEnterURL:          "Digite a URL do YouTube:",
		KeyURLPlaceholder:    "https://www.youtube.com/watch?v=...",
		KeySelectQuality:     "Selecione a Qualidade do Vídeo:",
		KeyDownload:          "Baixar Vídeo",
		KeyStarting:          "Iniciando download...",
		KeyProgressFormat:    "Baixado: %s a %s, tempo restante: %s",
		KeyProcessing:        "Download concluído! Processando vídeo...",
		KeyDownloadCompleted: "Download concluído!",
		KeyDownloadFailed:    "Falha no download",
		KeySuccessTitle:      "Sucesso",
		KeyErrorTitle:        "Erro",
		KeyErrorOccurred:     "Ocorreu um erro: %v",
		KeyShowInFolder:      "Mostrar na pasta",
		KeyOK:                "OK",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",

		KeyMergeToolMissing:   "O ffmpeg é necessário para juntar os formatos, mas não está instalado.",
		KeyPleaseEnterURL:     "Por favor, digite uma URL do YouTube.",
		KeyPleaseChooseFolder: "Por favor, escolha um local de download.",
		KeyFolderMissing:      "O local de download não existe.",
		KeyInvalidQuality:     "Selecione uma qualidade de vídeo da lista.",
		KeyDownloadRunning:    "Um download já está em andamento.",

		KeySettings:      "Configurações",
		KeyFile:          "Arquivo",
		KeyLanguage:      "Idioma",
		KeyMergeToolPath: "Local do ffmpeg",
		KeyMergeToolHint: "Deixe vazio para procurar no PATH",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeyBrowse:        "Navegar",
		KeySettingsSaved: "Configurações salvas com sucesso!",
	}
}
