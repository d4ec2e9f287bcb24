// Package ioutils provides the file system helpers behind the settings editor.
//
// This package contains functions for:
//   - Writing the config file in place
//   - Directory creation
//   - Existence checks for configured paths
//   - Describing the configured input image or directory
//
// # File Operations
//
//	err := ioutils.EnsureParentDir("/home/me/.config/iopaint/config.json")
//	err = ioutils.WriteFile("/home/me/.config/iopaint/config.json", data)
//	ok := ioutils.Exists("/data/photos")
//
// # Input Preview
//
// The ImageService reads image headers only:
//
//	svc := ioutils.NewImageService()
//	info, _ := svc.DescribeInput(ctx, "/data/photos/cat.png")
//	fmt.Println(info) // "png image, 1024x768"
//
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognized.
package ioutils
