package categories

// Default returns the built-in category table. The order is part of the
// contract: earlier categories win when an extension appears twice.
func Default() *Map {
	m := New()
	m.Add("Images", ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".ico", ".tiff", ".webp")
	m.Add("Documents", ".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".pages", ".tex")
	m.Add("Spreadsheets", ".xls", ".xlsx", ".csv", ".ods", ".numbers")
	m.Add("Presentations", ".ppt", ".pptx", ".odp", ".key")
	m.Add("Videos", ".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v")
	m.Add("Audio", ".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a")
	m.Add("Archives", ".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz")
	m.Add("Code", ".py", ".js", ".html", ".css", ".cpp", ".java", ".c", ".h", ".php", ".rb")
	m.Add("Executables", ".exe", ".msi", ".dmg", ".pkg", ".deb", ".rpm", ".appimage")
	return m
}
