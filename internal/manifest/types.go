package manifest

// FileName is the asset catalog manifest inside an .appiconset.
const FileName = "Contents.json"

// Contents is the Contents.json of an app icon set.
type Contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// Image describes one icon slot.
type Image struct {
	Size     string `json:"size"`               // logical size, "20x20"
	Idiom    string `json:"idiom"`              // "iphone", "ipad", "ios-marketing"
	Filename string `json:"filename,omitempty"` // relative to the icon set
	Scale    string `json:"scale"`              // "2x"
}

// Info identifies the writer of the catalog.
type Info struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// SupportedVersion is the asset catalog schema version.
const SupportedVersion = 1
