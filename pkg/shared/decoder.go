package shared

import "github.com/go-playground/form"

// Decoder is shared by every handler that decodes query or form values.
var Decoder = form.NewDecoder()
