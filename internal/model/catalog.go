package model

import "github.com/samber/lo"

// DefaultModel is the inpainting model selected on a fresh install.
const DefaultModel = "lama"

// EraseModels are the classic erase/inpaint models.
var EraseModels = []string{
	"lama",
	"ldm",
	"zits",
	"mat",
	"fcf",
	"manga",
	"cv2",
	"migan",
}

// DiffusionModels are the Hugging Face diffusion models the server knows about.
var DiffusionModels = []string{
	"runwayml/stable-diffusion-inpainting",
	"Uminosachi/realisticVisionV51_v51VAE-inpainting",
	"redstonehero/dreamshaper-inpainting",
	"Sanster/anything-4.0-inpainting",
	"diffusers/stable-diffusion-xl-1.0-inpainting-0.1",
	"Fantasy-Studio/Paint-by-Example",
	"Sanster/PowerPaint-V1-stable-diffusion-inpainting",
	"kandinsky-community/kandinsky-2-2-decoder-inpaint",
}

// ModelValues returns the full model catalog, erase models first.
func ModelValues() []string {
	out := make([]string, 0, len(EraseModels)+len(DiffusionModels))
	out = append(out, EraseModels...)
	return append(out, DiffusionModels...)
}

// IsKnownModel reports whether name is in the catalog. The server also
// accepts arbitrary diffusers models, so an unknown name is not an error.
func IsKnownModel(name string) bool {
	return lo.Contains(ModelValues(), name)
}

// IsDiffusionModel reports whether name is one of DiffusionModels.
func IsDiffusionModel(name string) bool {
	return lo.Contains(DiffusionModels, name)
}
