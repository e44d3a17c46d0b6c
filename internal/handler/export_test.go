package handler

// Wrappers exposing unexported helpers to the external test package.

func ExportFilenameForTest(requested string) string {
	return exportFilename(requested)
}

func MaskAPIKeyForTest(key string) string {
	return maskAPIKey(key)
}
