package model

import "github.com/samber/lo"

// Device is the hardware a model runs on.
type Device string

const (
	DeviceCPU  Device = "cpu"
	DeviceCUDA Device = "cuda"
	DeviceMPS  Device = "mps"
)

var devices = []Device{DeviceCPU, DeviceCUDA, DeviceMPS}

// DeviceValues returns every Device in display order.
func DeviceValues() []string { return stringValues(devices) }

// Valid reports whether d is one of the known devices.
func (d Device) Valid() bool { return lo.Contains(devices, d) }

// InteractiveSegModel is a Segment Anything checkpoint.
type InteractiveSegModel string

const (
	InteractiveSegVitB      InteractiveSegModel = "vit_b"
	InteractiveSegVitL      InteractiveSegModel = "vit_l"
	InteractiveSegVitH      InteractiveSegModel = "vit_h"
	InteractiveSegMobileSAM InteractiveSegModel = "mobile_sam"
)

var interactiveSegModels = []InteractiveSegModel{
	InteractiveSegVitB,
	InteractiveSegVitL,
	InteractiveSegVitH,
	InteractiveSegMobileSAM,
}

// InteractiveSegModelValues returns every InteractiveSegModel in display order.
func InteractiveSegModelValues() []string { return stringValues(interactiveSegModels) }

func (m InteractiveSegModel) Valid() bool { return lo.Contains(interactiveSegModels, m) }

// RealESRGANModel is a super-resolution checkpoint.
type RealESRGANModel string

const (
	RealESRGANGeneralX4V3 RealESRGANModel = "realesr-general-x4v3"
	RealESRGANX4Plus      RealESRGANModel = "RealESRGAN_x4plus"
	RealESRGANX4PlusAnime RealESRGANModel = "RealESRGAN_x4plus_anime_6B"
)

var realESRGANModels = []RealESRGANModel{
	RealESRGANGeneralX4V3,
	RealESRGANX4Plus,
	RealESRGANX4PlusAnime,
}

// RealESRGANModelValues returns every RealESRGANModel in display order.
func RealESRGANModelValues() []string { return stringValues(realESRGANModels) }

func (m RealESRGANModel) Valid() bool { return lo.Contains(realESRGANModels, m) }

// RemoveBGModel is a background removal checkpoint.
type RemoveBGModel string

const (
	RemoveBGBriaRMBG      RemoveBGModel = "briaai/RMBG-1.4"
	RemoveBGU2Net         RemoveBGModel = "u2net"
	RemoveBGU2NetP        RemoveBGModel = "u2netp"
	RemoveBGU2NetHumanSeg RemoveBGModel = "u2net_human_seg"
	RemoveBGU2NetClothSeg RemoveBGModel = "u2net_cloth_seg"
	RemoveBGSilueta       RemoveBGModel = "silueta"
	RemoveBGISNetGeneral  RemoveBGModel = "isnet-general-use"
	RemoveBGISNetAnime    RemoveBGModel = "isnet-anime"
)

var removeBGModels = []RemoveBGModel{
	RemoveBGBriaRMBG,
	RemoveBGU2Net,
	RemoveBGU2NetP,
	RemoveBGU2NetHumanSeg,
	RemoveBGU2NetClothSeg,
	RemoveBGSilueta,
	RemoveBGISNetGeneral,
	RemoveBGISNetAnime,
}

// RemoveBGModelValues returns every RemoveBGModel in display order.
func RemoveBGModelValues() []string { return stringValues(removeBGModels) }

func (m RemoveBGModel) Valid() bool { return lo.Contains(removeBGModels, m) }

func stringValues[T ~string](all []T) []string {
	return lo.Map(all, func(v T, _ int) string { return string(v) })
}
