package classify

// DefaultCategories returns the built-in category table in matching order
func DefaultCategories() []Category {
	return []Category{
		{
			Name: "Documents",
			Extensions: []string{
				".txt", ".md", ".markdown", ".rtf", ".pdf", ".csv",
				".doc", ".docx", ".odt", ".xls", ".xlsx", ".ppt", ".pptx", ".key",
				".epub", ".log", ".drawio", ".ics", ".vcf", ".x-vcard",
			},
		},
		{
			Name: "Images",
			Extensions: []string{
				".jpg", ".jpeg", ".png", ".gif", ".webp", ".heic", ".tif", ".tiff",
				".svg", ".ico", ".icns", ".psd", ".ai", ".eps", ".xcf", ".ps",
				".design", ".dwg", ".tfw",
			},
		},
		{
			Name:       "Audio",
			Extensions: []string{".mp3", ".wav", ".aac", ".flac", ".ogg", ".m4a"},
		},
		{
			Name:       "Video",
			Extensions: []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".webm", ".m4v", ".3gp"},
		},
		{
			Name: "Code",
			Extensions: []string{
				".py", ".js", ".mjs", ".ts", ".java", ".c", ".cpp", ".php", ".rb", ".go",
				".rs", ".sh", ".html", ".css", ".json", ".xml", ".yaml", ".yml", ".sql",
				".plist", ".conf", ".ovpn", ".eslintrc", ".gitattributes", ".pod", ".trx",
				".nib", ".strings", ".dylib", ".car",
			},
		},
		{
			Name:       "Installers",
			Extensions: []string{".dmg", ".pkg", ".rpm", ".deb", ".iso", ".msi", ".apk"},
		},
		{
			Name:       "Executables",
			Extensions: []string{".exe"},
			Filenames:  []string{"installerhelper"},
		},
		{
			Name:       "Archives",
			Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".tgz", ".bkp", ".wpress"},
		},
		{
			Name:       "Fonts",
			Extensions: []string{".ttf", ".otf", ".woff", ".woff2"},
		},
	}
}

// DefaultRules returns validated rules for the built-in table
func DefaultRules() *Rules {
	rules, err := NewRules(DefaultCategories())
	if err != nil {
		panic("classify: invalid built-in categories: " + err.Error())
	}
	return rules
}
