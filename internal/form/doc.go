// Package form describes the settings form as a fixed, ordered list of
// fields bound to config.Settings.
//
// Each Field knows its JSON key, label, tab, widget kind and how to format
// and parse its value, so widgets only ever deal in strings:
//
//	values := form.Initial(settings)   // Settings -> form text
//	values["port"] = "9000"
//	next, err := form.Build(values)    // form text -> new Settings
//	var fe *form.FieldError
//	if errors.As(err, &fe) {
//	    // fe.Label names the offending field
//	}
//
// Build validates at the boundary: ports and quality must be in range and
// device and plugin model choices must come from their catalogs.
package form
