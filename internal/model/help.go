package model

// Field help shown next to form inputs.
const (
	ModelsHelp              = "Models (https://www.iopaint.com/models)"
	NoHalfHelp              = "Using full precision(fp32) model. If your diffusion model generate result is always black or green, use this argument."
	CPUOffloadHelp          = "Offloads diffusion model's weight to CPU RAM, significantly reducing vRAM usage."
	LowMemHelp              = "Enable attention slicing and vae tiling to save memory."
	DisableNSFWHelp         = "Disable NSFW checker for diffusion model."
	CPUTextEncoderHelp      = "Run diffusion models text encoder on CPU to reduce vRAM usage."
	LocalFilesOnlyHelp      = "When loading diffusion models, using local files only, not connect to HuggingFace server."
	InBrowserHelp           = "Automatically open the web UI in the browser when the server starts."
	ModelDirHelp            = "Model download directory (by setting XDG_CACHE_HOME environment variable), by default model download to ~/.cache"
	InputHelp               = "If input is image, it will be loaded by default. If input is directory, you can browse and select image in file manager."
	OutputDirHelp           = "Result images will be saved to output directory automatically."
	QualityHelp             = "Quality of image encoding, 75-100. Default is 95, higher quality will generate larger file size."
	InteractiveSegHelp      = "Enable interactive segmentation using Segment Anything."
	InteractiveSegModelHelp = "Model size: mobile_sam < vit_b < vit_l < vit_h. Bigger model size means better segmentation but slower speed."
	RemoveBGHelp            = "Enable remove background plugin. Always run on CPU"
	AnimeSegHelp            = "Enable anime segmentation plugin. Always run on CPU"
	RealESRGANHelp          = "Enable realesrgan super resolution"
	GFPGANHelp              = "Enable GFPGAN face restore. To also enhance background, use with --enable-realesrgan"
	RestoreFormerHelp       = "Enable RestoreFormer face restore. To also enhance background, use with --enable-realesrgan"
)
