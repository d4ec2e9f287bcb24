// Package editor loads and saves the settings file behind the config form.
//
// An Editor is bound to a single config file path for its lifetime:
//
//	ed := editor.New("/home/me/.config/iopaint/config.json")
//	settings := ed.Load() // defaults on missing or corrupt file
//	msg := ed.Save(settings)
//
// Save returns a status string rather than an error because the message is
// rendered straight into the form:
//
//	[Error] Input file or directory does not exist
//	Save configure file failed: write ...: permission denied
//	[14:03:59] Successful save config to: /home/me/.config/iopaint/config.json
package editor
