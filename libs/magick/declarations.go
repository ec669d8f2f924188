package magick

import "unsafe"

// API holds one Go function per native entry point. A field stays nil when
// the loaded ImageMagick build does not export the symbol; check
// Registry.Has before calling anything outside the core set.
type API struct {
	// MagickCore
	AcquireExceptionInfo  func() uintptr
	AcquireImageInfo      func() uintptr
	CatchException        func(uintptr)
	CloneImages           func(uintptr, string, uintptr) uintptr
	DestroyExceptionInfo  func(uintptr) uintptr
	DestroyImageInfo      func(uintptr) uintptr
	GetMagickQuantumDepth func(*uint) string
	GetMagickReleaseDate  func() string
	GetMagickVersion      func(*uint) string
	GetNextImageInList    func(uintptr) uintptr
	MagickToMime          func(string) OwnedAddr

	// MagickWand
	ClearMagickWand                   func(uintptr)
	CloneMagickWand                   func(uintptr) uintptr
	DestroyMagickWand                 func(uintptr) uintptr
	GetImageFromMagickWand            func(uintptr) uintptr
	IsMagickWand                      func(uintptr) int32
	IsMagickWandInstantiated          func() int32
	MagickAddImage                    func(uintptr, uintptr) int32
	MagickAnnotateImage               func(uintptr, uintptr, float64, float64, float64, string) int32
	MagickAppendImages                func(uintptr, int32) uintptr
	MagickAutoOrientImage             func(uintptr) int32
	MagickBorderImage                 func(uintptr, uintptr, uint, uint) int32
	MagickClearException              func(uintptr) int32
	MagickCoalesceImages              func(uintptr) uintptr
	MagickCompositeImage              func(uintptr, uintptr, int32, int, int) int32
	MagickCompositeImageChannel       func(uintptr, int32, uintptr, int32, int, int) int32
	MagickContrastStretchImage        func(uintptr, float64, float64) int32
	MagickContrastStretchImageChannel func(uintptr, int32, float64, float64) int32
	MagickCropImage                   func(uintptr, uint, uint, int, int) int32
	MagickDeleteImageArtifact         func(uintptr, string) int32
	MagickDeleteImageProperty         func(uintptr, string) int32
	MagickDeleteOption                func(uintptr, string) int32
	MagickDistortImage                func(uintptr, int32, uint, *float64, int32) int32
	MagickEqualizeImage               func(uintptr) int32
	MagickEvaluateImage               func(uintptr, int32, float64) int32
	MagickEvaluateImageChannel        func(uintptr, int32, int32, float64) int32
	MagickFlipImage                   func(uintptr) int32
	MagickFlopImage                   func(uintptr) int32
	MagickFrameImage                  func(uintptr, uintptr, uint, uint, int, int) int32
	MagickFunctionImage               func(uintptr, int32, uint, *float64) int32
	MagickFunctionImageChannel        func(uintptr, int32, int32, uint, *float64) int32
	MagickFxImage                     func(uintptr, string) uintptr
	MagickFxImageChannel              func(uintptr, int32, string) uintptr
	MagickGammaImage                  func(uintptr, float64) int32
	MagickGammaImageChannel           func(uintptr, int32, float64) int32
	MagickGaussianBlurImage           func(uintptr, float64, float64) int32
	MagickGetAntialias                func(uintptr) int32
	MagickGetBackgroundColor          func(uintptr) uintptr
	MagickGetColorspace               func(uintptr) int32
	MagickGetCompression              func(uintptr) int32
	MagickGetCompressionQuality       func(uintptr) uint
	MagickGetCopyright                func() string
	MagickGetException                func(uintptr, *int32) OwnedAddr
	MagickGetExceptionType            func(uintptr) int32
	MagickGetFont                     func(uintptr) OwnedAddr
	MagickGetGravity                  func(uintptr) int32
	MagickGetImageAlphaChannel        func(uintptr) uint
	MagickGetImageBackgroundColor     func(uintptr, uintptr) int32
	MagickGetImageBlob                func(uintptr, *uint) OwnedAddr
	MagickGetImageChannelDepth        func(uintptr, int32) uint
	MagickGetImageColorspace          func(uintptr) int32
	MagickGetImageCompression         func(uintptr) int32
	MagickGetImageCompressionQuality  func(uintptr) int
	MagickGetImageDelay               func(uintptr) int
	MagickGetImageDepth               func(uintptr) uint
	MagickGetImageFormat              func(uintptr) OwnedAddr
	MagickGetImageHeight              func(uintptr) uint
	MagickGetImageHistogram           func(uintptr, *uint) uintptr
	MagickGetImageMatteColor          func(uintptr, uintptr) int32
	MagickGetImageOrientation         func(uintptr) int32
	MagickGetImageProperties          func(uintptr, string, *uint) OwnedAddr
	MagickGetImageProperty            func(uintptr, string) OwnedAddr
	MagickGetImageResolution          func(uintptr, *float64, *float64) int32
	MagickGetImageSignature           func(uintptr) OwnedAddr
	MagickGetImageType                func(uintptr) int32
	MagickGetImageUnits               func(uintptr) int32
	MagickGetImageVirtualPixelMethod  func(uintptr) int32
	MagickGetImageWidth               func(uintptr) uint
	MagickGetImagesBlob               func(uintptr, *uint) OwnedAddr
	MagickGetIteratorIndex            func(uintptr) int
	MagickGetNumberImages             func(uintptr) uint
	MagickGetOption                   func(uintptr, string) OwnedAddr
	MagickGetPointsize                func(uintptr) float64
	MagickGetQuantumRange             func(*uint) string
	MagickGetSize                     func(uintptr, *uint, *uint) int32
	MagickIdentifyImage               func(uintptr) OwnedAddr
	MagickLinearStretchImage          func(uintptr, float64, float64) int32
	MagickLiquidRescaleImage          func(uintptr, uint, uint, float64, float64) int32
	MagickModulateImage               func(uintptr, float64, float64, float64) int32
	MagickNegateImage                 func(uintptr, int32) int32
	MagickNegateImageChannel          func(uintptr, int32, int32) int32
	MagickNewImage                    func(uintptr, int32, int32, uintptr) int32
	MagickNormalizeImage              func(uintptr) int32
	MagickNormalizeImageChannel       func(uintptr, int32) int32
	MagickQueryConfigureOption        func(string) OwnedAddr
	MagickQueryConfigureOptions       func(string, *uint) OwnedAddr
	MagickQueryFontMetrics            func(uintptr, uintptr, string) OwnedAddr
	MagickQueryFonts                  func(string, *uint) OwnedAddr
	MagickQueryFormats                func(string, *uint) OwnedAddr
	MagickQueryMultilineFontMetrics   func(uintptr, uintptr, string) OwnedAddr
	MagickReadImage                   func(uintptr, string) int32
	MagickReadImageBlob               func(uintptr, uintptr, uint) int32
	MagickReadImageFile               func(uintptr, uintptr) int32
	MagickRelinquishMemory            func(uintptr) uintptr
	MagickRemoveImage                 func(uintptr) int32
	MagickResetImagePage              func(uintptr, string) int32
	MagickResetIterator               func(uintptr)
	MagickResizeImage                 func(uintptr, uint, uint, int32, float64) int32
	MagickRotateImage                 func(uintptr, uintptr, float64) int32
	MagickSampleImage                 func(uintptr, uint, uint) int32
	MagickSeparateImageChannel        func(uintptr, int32) int32
	MagickSetAntialias                func(uintptr, int32) int32
	MagickSetBackgroundColor          func(uintptr, uintptr) int32
	MagickSetFilename                 func(uintptr, string) int32
	MagickSetFirstIterator            func(uintptr)
	MagickSetFont                     func(uintptr, string) int32
	MagickSetGravity                  func(uintptr, int32) int32
	MagickSetImageAlphaChannel        func(uintptr, int32) int32
	MagickSetImageBackgroundColor     func(uintptr, uintptr) int32
	MagickSetImageColorspace          func(uintptr, int32) int32
	MagickSetImageCompression         func(uintptr, int32) int32
	MagickSetImageCompressionQuality  func(uintptr, int) int32
	MagickSetImageDelay               func(uintptr, int) int32
	MagickSetImageDepth               func(uintptr, uint) int32
	MagickSetImageFormat              func(uintptr, string) int32
	MagickSetImageMatte               func(uintptr, int32) int32
	MagickSetImageMatteColor          func(uintptr, uintptr) int32
	MagickSetImageOrientation         func(uintptr, int32) int32
	MagickSetImageProperty            func(uintptr, string, string) int32
	MagickSetImageResolution          func(uintptr, float64, float64) int32
	MagickSetImageType                func(uintptr, int32) int32
	MagickSetImageUnits               func(uintptr, int32) int32
	MagickSetImageVirtualPixelMethod  func(uintptr, int32) int32
	MagickSetIteratorIndex            func(uintptr, int) int32
	MagickSetLastIterator             func(uintptr)
	MagickSetOption                   func(uintptr, string, string) int32
	MagickSetPointsize                func(uintptr, float64) int32
	MagickSetResolution               func(uintptr, float64, float64) int32
	MagickSetSize                     func(uintptr, uint, uint) int32
	MagickStripImage                  func(uintptr) int32
	MagickThresholdImage              func(uintptr, float64) int32
	MagickThresholdImageChannel       func(uintptr, int32, float64) int32
	MagickTransformImage              func(uintptr, string, string) uintptr
	MagickTransparentPaintImage       func(uintptr, uintptr, float64, float64, int32) int32
	MagickTransposeImage              func(uintptr) int32
	MagickTransverseImage             func(uintptr) int32
	MagickTrimImage                   func(uintptr, float64) int32
	MagickUnsharpMaskImage            func(uintptr, float64, float64, float64, float64) int32
	MagickWandGenesis                 func()
	MagickWandTerminus                func()
	MagickWriteImage                  func(uintptr, string) int32
	MagickWriteImageFile              func(uintptr, uintptr) int32
	MagickWriteImages                 func(uintptr, string, int32) int32
	MagickWriteImagesFile             func(uintptr, uintptr) int32
	NewMagickWand                     func() uintptr
	NewMagickWandFromImage            func(uintptr) uintptr

	// PixelIterator
	ClonePixelIterator          func(uintptr) uintptr
	DestroyPixelIterator        func(uintptr) uintptr
	IsPixelIterator             func(uintptr) int32
	NewPixelIterator            func(uintptr) uintptr
	PixelClearIteratorException func(uintptr) int32
	PixelGetIteratorException   func(uintptr, *int32) OwnedAddr
	PixelGetNextIteratorRow     func(uintptr, *uint) uintptr
	PixelSetFirstIteratorRow    func(uintptr)
	PixelSetIteratorRow         func(uintptr, int) int32

	// PixelWand
	DestroyPixelWand                func(uintptr) uintptr
	IsPixelWand                     func(uintptr) int32
	IsPixelWandSimilar              func(uintptr, uintptr, float64) int32
	NewPixelWand                    func() uintptr
	PixelClearException             func(uintptr) int32
	PixelGetAlpha                   func(uintptr) float64
	PixelGetAlphaQuantum            func(uintptr) uint
	PixelGetBlue                    func(uintptr) float64
	PixelGetBlueQuantum             func(uintptr) uint
	PixelGetColorAsNormalizedString func(uintptr) OwnedAddr
	PixelGetColorAsString           func(uintptr) OwnedAddr
	PixelGetColorCount              func(uintptr) uint
	PixelGetException               func(uintptr, *int32) OwnedAddr
	PixelGetGreen                   func(uintptr) float64
	PixelGetGreenQuantum            func(uintptr) uint
	PixelGetMagickColor             func(uintptr, uintptr)
	PixelGetRed                     func(uintptr) float64
	PixelGetRedQuantum              func(uintptr) uint
	PixelSetColor                   func(uintptr, string)
	PixelSetMagickColor             func(uintptr, uintptr)

	// DrawingWand
	ClearDrawingWand                             func(uintptr)
	CloneDrawingWand                             func(uintptr) uintptr
	DestroyDrawingWand                           func(uintptr) uintptr
	DrawAffine                                   func(uintptr, *AffineMatrix)
	DrawAnnotation                               func(uintptr, float64, float64, *byte)
	DrawArc                                      func(uintptr, float64, float64, float64, float64, float64, float64)
	DrawBezier                                   func(uintptr, uint, *PointInfo)
	DrawCircle                                   func(uintptr, float64, float64, float64, float64)
	DrawClearException                           func(uintptr) int32
	DrawColor                                    func(uintptr, float64, float64, uint32)
	DrawComment                                  func(uintptr, string)
	DrawComposite                                func(uintptr, int32, float64, float64, float64, float64, uintptr)
	DrawEllipse                                  func(uintptr, float64, float64, float64, float64, float64, float64)
	DrawGetBorderColor                           func(uintptr, uintptr)
	DrawGetClipPath                              func(uintptr) OwnedAddr
	DrawGetClipRule                              func(uintptr) uint32
	DrawGetClipUnits                             func(uintptr) uint32
	DrawGetException                             func(uintptr, *int32) OwnedAddr
	DrawGetFillColor                             func(uintptr, uintptr)
	DrawGetFillOpacity                           func(uintptr) float64
	DrawGetFillRule                              func(uintptr) uint32
	DrawGetFont                                  func(uintptr) OwnedAddr
	DrawGetFontFamily                            func(uintptr) OwnedAddr
	DrawGetFontResolution                        func(uintptr, *float64, *float64) uint32
	DrawGetFontSize                              func(uintptr) float64
	DrawGetFontStretch                           func(uintptr) int32
	DrawGetFontStyle                             func(uintptr) int32
	DrawGetFontWeight                            func(uintptr) uint
	DrawGetGravity                               func(uintptr) int32
	DrawGetOpacity                               func(uintptr) float64
	DrawGetStrokeAntialias                       func(uintptr) int32
	DrawGetStrokeColor                           func(uintptr, uintptr)
	DrawGetStrokeDashArray                       func(uintptr, *uint) OwnedAddr
	DrawGetStrokeDashOffset                      func(uintptr) float64
	DrawGetStrokeLineCap                         func(uintptr) int32
	DrawGetStrokeLineJoin                        func(uintptr) int32
	DrawGetStrokeMiterLimit                      func(uintptr) uint
	DrawGetStrokeOpacity                         func(uintptr) float64
	DrawGetStrokeWidth                           func(uintptr) float64
	DrawGetTextAlignment                         func(uintptr) int32
	DrawGetTextAntialias                         func(uintptr) int32
	DrawGetTextDecoration                        func(uintptr) int32
	DrawGetTextDirection                         func(uintptr) int32
	DrawGetTextEncoding                          func(uintptr) OwnedAddr
	DrawGetTextInterlineSpacing                  func(uintptr) float64
	DrawGetTextInterwordSpacing                  func(uintptr) float64
	DrawGetTextKerning                           func(uintptr) float64
	DrawGetTextUnderColor                        func(uintptr, uintptr)
	DrawGetVectorGraphics                        func(uintptr) OwnedAddr
	DrawLine                                     func(uintptr, float64, float64, float64, float64)
	DrawMatte                                    func(uintptr, float64, float64, uint32)
	DrawPathClose                                func(uintptr)
	DrawPathCurveToAbsolute                      func(uintptr, float64, float64, float64, float64, float64, float64)
	DrawPathCurveToQuadraticBezierAbsolute       func(uintptr, float64, float64, float64, float64)
	DrawPathCurveToQuadraticBezierRelative       func(uintptr, float64, float64, float64, float64)
	DrawPathCurveToQuadraticBezierSmoothAbsolute func(uintptr, float64, float64)
	DrawPathCurveToQuadraticBezierSmoothRelative func(uintptr, float64, float64)
	DrawPathCurveToRelative                      func(uintptr, float64, float64, float64, float64, float64, float64)
	DrawPathCurveToSmoothAbsolute                func(uintptr, float64, float64, float64, float64)
	DrawPathCurveToSmoothRelative                func(uintptr, float64, float64, float64, float64)
	DrawPathEllipticArcAbsolute                  func(uintptr, float64, float64, float64, uint32, uint32, float64, float64)
	DrawPathEllipticArcRelative                  func(uintptr, float64, float64, float64, uint32, uint32, float64, float64)
	DrawPathFinish                               func(uintptr)
	DrawPathLineToAbsolute                       func(uintptr, float64, float64)
	DrawPathLineToHorizontalAbsolute             func(uintptr, float64)
	DrawPathLineToHorizontalRelative             func(uintptr, float64)
	DrawPathLineToRelative                       func(uintptr, float64, float64)
	DrawPathLineToVerticalAbsolute               func(uintptr, float64)
	DrawPathLineToVerticalRelative               func(uintptr, float64)
	DrawPathMoveToAbsolute                       func(uintptr, float64, float64)
	DrawPathMoveToRelative                       func(uintptr, float64, float64)
	DrawPathStart                                func(uintptr)
	DrawPoint                                    func(uintptr, float64, float64)
	DrawPolygon                                  func(uintptr, uint, *PointInfo)
	DrawPolyline                                 func(uintptr, uint, *PointInfo)
	DrawPopClipPath                              func(uintptr)
	DrawPopDefs                                  func(uintptr)
	DrawPopPattern                               func(uintptr)
	DrawPushClipPath                             func(uintptr, string)
	DrawPushDefs                                 func(uintptr)
	DrawPushPattern                              func(uintptr, string, float64, float64, float64, float64)
	DrawRectangle                                func(uintptr, float64, float64, float64, float64)
	DrawResetVectorGraphics                      func(uintptr)
	DrawRotate                                   func(uintptr, float64)
	DrawRoundRectangle                           func(uintptr, float64, float64, float64, float64, float64, float64)
	DrawScale                                    func(uintptr, float64, float64)
	DrawSetBorderColor                           func(uintptr, uintptr)
	DrawSetClipPath                              func(uintptr, string) int32
	DrawSetClipRule                              func(uintptr, uint32)
	DrawSetClipUnits                             func(uintptr, uint32)
	DrawSetFillColor                             func(uintptr, uintptr)
	DrawSetFillOpacity                           func(uintptr, float64)
	DrawSetFillPatternURL                        func(uintptr, string) uint32
	DrawSetFillRule                              func(uintptr, uint32)
	DrawSetFont                                  func(uintptr, string)
	DrawSetFontFamily                            func(uintptr, string) uint32
	DrawSetFontResolution                        func(uintptr, float64, float64) uint32
	DrawSetFontSize                              func(uintptr, float64)
	DrawSetFontStretch                           func(uintptr, int32)
	DrawSetFontStyle                             func(uintptr, int32)
	DrawSetFontWeight                            func(uintptr, uint)
	DrawSetGravity                               func(uintptr, int32)
	DrawSetOpacity                               func(uintptr, float64)
	DrawSetStrokeAntialias                       func(uintptr, int32)
	DrawSetStrokeColor                           func(uintptr, uintptr)
	DrawSetStrokeDashArray                       func(uintptr, uint, *float64)
	DrawSetStrokeDashOffset                      func(uintptr, float64)
	DrawSetStrokeLineCap                         func(uintptr, int32)
	DrawSetStrokeLineJoin                        func(uintptr, int32)
	DrawSetStrokeMiterLimit                      func(uintptr, uint)
	DrawSetStrokeOpacity                         func(uintptr, float64)
	DrawSetStrokePatternURL                      func(uintptr, string) uint32
	DrawSetStrokeWidth                           func(uintptr, float64)
	DrawSetTextAlignment                         func(uintptr, int32)
	DrawSetTextAntialias                         func(uintptr, int32)
	DrawSetTextDecoration                        func(uintptr, int32)
	DrawSetTextDirection                         func(uintptr, int32)
	DrawSetTextEncoding                          func(uintptr, string)
	DrawSetTextInterlineSpacing                  func(uintptr, float64)
	DrawSetTextInterwordSpacing                  func(uintptr, float64)
	DrawSetTextKerning                           func(uintptr, float64)
	DrawSetTextUnderColor                        func(uintptr, uintptr)
	DrawSetVectorGraphics                        func(uintptr, string)
	DrawSetViewbox                               func(uintptr, int, int, int, int)
	DrawSkewX                                    func(uintptr, float64)
	DrawSkewY                                    func(uintptr, float64)
	DrawTranslate                                func(uintptr, float64, float64)
	IsDrawingWand                                func(uintptr) int32
	MagickDrawImage                              func(uintptr, uintptr) int32
	NewDrawingWand                               func() uintptr
	PopDrawingWand                               func(uintptr) uint32
	PushDrawingWand                              func(uintptr) uint32

	// Command runner
	MagickCommandGenesis func(imageInfo, command uintptr, argc int32, argv, metadata unsafe.Pointer, exception uintptr) int32

	// C runtime
	Fdopen func(int32, string) uintptr
	Fflush func(uintptr) int32
	Free   func(uintptr)
}

type declaration struct {
	name     string
	lib      libraryKind
	fn       any
	optional bool
}

// declarations lists every entry point bound by Registry. Entries marked
// optional only exist in newer ImageMagick 6 releases.
func (a *API) declarations() []declaration {
	return []declaration{
		// MagickCore
		{name: "AcquireExceptionInfo", lib: libCore, fn: &a.AcquireExceptionInfo},
		{name: "AcquireImageInfo", lib: libCore, fn: &a.AcquireImageInfo},
		{name: "CatchException", lib: libCore, fn: &a.CatchException},
		{name: "CloneImages", lib: libCore, fn: &a.CloneImages},
		{name: "DestroyExceptionInfo", lib: libCore, fn: &a.DestroyExceptionInfo},
		{name: "DestroyImageInfo", lib: libCore, fn: &a.DestroyImageInfo},
		{name: "GetMagickQuantumDepth", lib: libCore, fn: &a.GetMagickQuantumDepth},
		{name: "GetMagickReleaseDate", lib: libCore, fn: &a.GetMagickReleaseDate},
		{name: "GetMagickVersion", lib: libCore, fn: &a.GetMagickVersion},
		{name: "GetNextImageInList", lib: libCore, fn: &a.GetNextImageInList},
		{name: "MagickToMime", lib: libCore, fn: &a.MagickToMime},
		// MagickWand
		{name: "ClearMagickWand", lib: libWand, fn: &a.ClearMagickWand},
		{name: "CloneMagickWand", lib: libWand, fn: &a.CloneMagickWand},
		{name: "DestroyMagickWand", lib: libWand, fn: &a.DestroyMagickWand},
		{name: "GetImageFromMagickWand", lib: libWand, fn: &a.GetImageFromMagickWand},
		{name: "IsMagickWand", lib: libWand, fn: &a.IsMagickWand},
		{name: "IsMagickWandInstantiated", lib: libWand, fn: &a.IsMagickWandInstantiated},
		{name: "MagickAddImage", lib: libWand, fn: &a.MagickAddImage},
		{name: "MagickAnnotateImage", lib: libWand, fn: &a.MagickAnnotateImage},
		{name: "MagickAppendImages", lib: libWand, fn: &a.MagickAppendImages},
		{name: "MagickAutoOrientImage", lib: libWand, fn: &a.MagickAutoOrientImage, optional: true},
		{name: "MagickBorderImage", lib: libWand, fn: &a.MagickBorderImage},
		{name: "MagickClearException", lib: libWand, fn: &a.MagickClearException},
		{name: "MagickCoalesceImages", lib: libWand, fn: &a.MagickCoalesceImages},
		{name: "MagickCompositeImage", lib: libWand, fn: &a.MagickCompositeImage},
		{name: "MagickCompositeImageChannel", lib: libWand, fn: &a.MagickCompositeImageChannel},
		{name: "MagickContrastStretchImage", lib: libWand, fn: &a.MagickContrastStretchImage},
		{name: "MagickContrastStretchImageChannel", lib: libWand, fn: &a.MagickContrastStretchImageChannel},
		{name: "MagickCropImage", lib: libWand, fn: &a.MagickCropImage},
		{name: "MagickDeleteImageArtifact", lib: libWand, fn: &a.MagickDeleteImageArtifact},
		{name: "MagickDeleteImageProperty", lib: libWand, fn: &a.MagickDeleteImageProperty},
		{name: "MagickDeleteOption", lib: libWand, fn: &a.MagickDeleteOption},
		{name: "MagickDistortImage", lib: libWand, fn: &a.MagickDistortImage},
		{name: "MagickEqualizeImage", lib: libWand, fn: &a.MagickEqualizeImage},
		{name: "MagickEvaluateImage", lib: libWand, fn: &a.MagickEvaluateImage},
		{name: "MagickEvaluateImageChannel", lib: libWand, fn: &a.MagickEvaluateImageChannel},
		{name: "MagickFlipImage", lib: libWand, fn: &a.MagickFlipImage},
		{name: "MagickFlopImage", lib: libWand, fn: &a.MagickFlopImage},
		{name: "MagickFrameImage", lib: libWand, fn: &a.MagickFrameImage},
		{name: "MagickFunctionImage", lib: libWand, fn: &a.MagickFunctionImage},
		{name: "MagickFunctionImageChannel", lib: libWand, fn: &a.MagickFunctionImageChannel},
		{name: "MagickFxImage", lib: libWand, fn: &a.MagickFxImage},
		{name: "MagickFxImageChannel", lib: libWand, fn: &a.MagickFxImageChannel},
		{name: "MagickGammaImage", lib: libWand, fn: &a.MagickGammaImage},
		{name: "MagickGammaImageChannel", lib: libWand, fn: &a.MagickGammaImageChannel},
		{name: "MagickGaussianBlurImage", lib: libWand, fn: &a.MagickGaussianBlurImage},
		{name: "MagickGetAntialias", lib: libWand, fn: &a.MagickGetAntialias},
		{name: "MagickGetBackgroundColor", lib: libWand, fn: &a.MagickGetBackgroundColor},
		{name: "MagickGetColorspace", lib: libWand, fn: &a.MagickGetColorspace},
		{name: "MagickGetCompression", lib: libWand, fn: &a.MagickGetCompression},
		{name: "MagickGetCompressionQuality", lib: libWand, fn: &a.MagickGetCompressionQuality},
		{name: "MagickGetCopyright", lib: libWand, fn: &a.MagickGetCopyright},
		{name: "MagickGetException", lib: libWand, fn: &a.MagickGetException},
		{name: "MagickGetExceptionType", lib: libWand, fn: &a.MagickGetExceptionType},
		{name: "MagickGetFont", lib: libWand, fn: &a.MagickGetFont},
		{name: "MagickGetGravity", lib: libWand, fn: &a.MagickGetGravity},
		{name: "MagickGetImageAlphaChannel", lib: libWand, fn: &a.MagickGetImageAlphaChannel},
		{name: "MagickGetImageBackgroundColor", lib: libWand, fn: &a.MagickGetImageBackgroundColor},
		{name: "MagickGetImageBlob", lib: libWand, fn: &a.MagickGetImageBlob},
		{name: "MagickGetImageChannelDepth", lib: libWand, fn: &a.MagickGetImageChannelDepth},
		{name: "MagickGetImageColorspace", lib: libWand, fn: &a.MagickGetImageColorspace},
		{name: "MagickGetImageCompression", lib: libWand, fn: &a.MagickGetImageCompression},
		{name: "MagickGetImageCompressionQuality", lib: libWand, fn: &a.MagickGetImageCompressionQuality},
		{name: "MagickGetImageDelay", lib: libWand, fn: &a.MagickGetImageDelay},
		{name: "MagickGetImageDepth", lib: libWand, fn: &a.MagickGetImageDepth},
		{name: "MagickGetImageFormat", lib: libWand, fn: &a.MagickGetImageFormat},
		{name: "MagickGetImageHeight", lib: libWand, fn: &a.MagickGetImageHeight},
		{name: "MagickGetImageHistogram", lib: libWand, fn: &a.MagickGetImageHistogram},
		{name: "MagickGetImageMatteColor", lib: libWand, fn: &a.MagickGetImageMatteColor},
		{name: "MagickGetImageOrientation", lib: libWand, fn: &a.MagickGetImageOrientation},
		{name: "MagickGetImageProperties", lib: libWand, fn: &a.MagickGetImageProperties},
		{name: "MagickGetImageProperty", lib: libWand, fn: &a.MagickGetImageProperty},
		{name: "MagickGetImageResolution", lib: libWand, fn: &a.MagickGetImageResolution},
		{name: "MagickGetImageSignature", lib: libWand, fn: &a.MagickGetImageSignature},
		{name: "MagickGetImageType", lib: libWand, fn: &a.MagickGetImageType},
		{name: "MagickGetImageUnits", lib: libWand, fn: &a.MagickGetImageUnits},
		{name: "MagickGetImageVirtualPixelMethod", lib: libWand, fn: &a.MagickGetImageVirtualPixelMethod},
		{name: "MagickGetImageWidth", lib: libWand, fn: &a.MagickGetImageWidth},
		{name: "MagickGetImagesBlob", lib: libWand, fn: &a.MagickGetImagesBlob},
		{name: "MagickGetIteratorIndex", lib: libWand, fn: &a.MagickGetIteratorIndex},
		{name: "MagickGetNumberImages", lib: libWand, fn: &a.MagickGetNumberImages},
		{name: "MagickGetOption", lib: libWand, fn: &a.MagickGetOption},
		{name: "MagickGetPointsize", lib: libWand, fn: &a.MagickGetPointsize},
		{name: "MagickGetQuantumRange", lib: libWand, fn: &a.MagickGetQuantumRange},
		{name: "MagickGetSize", lib: libWand, fn: &a.MagickGetSize},
		{name: "MagickIdentifyImage", lib: libWand, fn: &a.MagickIdentifyImage},
		{name: "MagickLinearStretchImage", lib: libWand, fn: &a.MagickLinearStretchImage},
		{name: "MagickLiquidRescaleImage", lib: libWand, fn: &a.MagickLiquidRescaleImage},
		{name: "MagickModulateImage", lib: libWand, fn: &a.MagickModulateImage},
		{name: "MagickNegateImage", lib: libWand, fn: &a.MagickNegateImage},
		{name: "MagickNegateImageChannel", lib: libWand, fn: &a.MagickNegateImageChannel},
		{name: "MagickNewImage", lib: libWand, fn: &a.MagickNewImage},
		{name: "MagickNormalizeImage", lib: libWand, fn: &a.MagickNormalizeImage},
		{name: "MagickNormalizeImageChannel", lib: libWand, fn: &a.MagickNormalizeImageChannel},
		{name: "MagickQueryConfigureOption", lib: libWand, fn: &a.MagickQueryConfigureOption},
		{name: "MagickQueryConfigureOptions", lib: libWand, fn: &a.MagickQueryConfigureOptions},
		{name: "MagickQueryFontMetrics", lib: libWand, fn: &a.MagickQueryFontMetrics},
		{name: "MagickQueryFonts", lib: libWand, fn: &a.MagickQueryFonts},
		{name: "MagickQueryFormats", lib: libWand, fn: &a.MagickQueryFormats},
		{name: "MagickQueryMultilineFontMetrics", lib: libWand, fn: &a.MagickQueryMultilineFontMetrics},
		{name: "MagickReadImage", lib: libWand, fn: &a.MagickReadImage},
		{name: "MagickReadImageBlob", lib: libWand, fn: &a.MagickReadImageBlob},
		{name: "MagickReadImageFile", lib: libWand, fn: &a.MagickReadImageFile},
		{name: "MagickRelinquishMemory", lib: libWand, fn: &a.MagickRelinquishMemory},
		{name: "MagickRemoveImage", lib: libWand, fn: &a.MagickRemoveImage},
		{name: "MagickResetImagePage", lib: libWand, fn: &a.MagickResetImagePage},
		{name: "MagickResetIterator", lib: libWand, fn: &a.MagickResetIterator},
		{name: "MagickResizeImage", lib: libWand, fn: &a.MagickResizeImage},
		{name: "MagickRotateImage", lib: libWand, fn: &a.MagickRotateImage},
		{name: "MagickSampleImage", lib: libWand, fn: &a.MagickSampleImage},
		{name: "MagickSeparateImageChannel", lib: libWand, fn: &a.MagickSeparateImageChannel},
		{name: "MagickSetAntialias", lib: libWand, fn: &a.MagickSetAntialias},
		{name: "MagickSetBackgroundColor", lib: libWand, fn: &a.MagickSetBackgroundColor},
		{name: "MagickSetFilename", lib: libWand, fn: &a.MagickSetFilename},
		{name: "MagickSetFirstIterator", lib: libWand, fn: &a.MagickSetFirstIterator},
		{name: "MagickSetFont", lib: libWand, fn: &a.MagickSetFont},
		{name: "MagickSetGravity", lib: libWand, fn: &a.MagickSetGravity},
		{name: "MagickSetImageAlphaChannel", lib: libWand, fn: &a.MagickSetImageAlphaChannel},
		{name: "MagickSetImageBackgroundColor", lib: libWand, fn: &a.MagickSetImageBackgroundColor},
		{name: "MagickSetImageColorspace", lib: libWand, fn: &a.MagickSetImageColorspace},
		{name: "MagickSetImageCompression", lib: libWand, fn: &a.MagickSetImageCompression},
		{name: "MagickSetImageCompressionQuality", lib: libWand, fn: &a.MagickSetImageCompressionQuality},
		{name: "MagickSetImageDelay", lib: libWand, fn: &a.MagickSetImageDelay},
		{name: "MagickSetImageDepth", lib: libWand, fn: &a.MagickSetImageDepth},
		{name: "MagickSetImageFormat", lib: libWand, fn: &a.MagickSetImageFormat},
		{name: "MagickSetImageMatte", lib: libWand, fn: &a.MagickSetImageMatte},
		{name: "MagickSetImageMatteColor", lib: libWand, fn: &a.MagickSetImageMatteColor},
		{name: "MagickSetImageOrientation", lib: libWand, fn: &a.MagickSetImageOrientation},
		{name: "MagickSetImageProperty", lib: libWand, fn: &a.MagickSetImageProperty},
		{name: "MagickSetImageResolution", lib: libWand, fn: &a.MagickSetImageResolution},
		{name: "MagickSetImageType", lib: libWand, fn: &a.MagickSetImageType},
		{name: "MagickSetImageUnits", lib: libWand, fn: &a.MagickSetImageUnits},
		{name: "MagickSetImageVirtualPixelMethod", lib: libWand, fn: &a.MagickSetImageVirtualPixelMethod},
		{name: "MagickSetIteratorIndex", lib: libWand, fn: &a.MagickSetIteratorIndex},
		{name: "MagickSetLastIterator", lib: libWand, fn: &a.MagickSetLastIterator},
		{name: "MagickSetOption", lib: libWand, fn: &a.MagickSetOption},
		{name: "MagickSetPointsize", lib: libWand, fn: &a.MagickSetPointsize},
		{name: "MagickSetResolution", lib: libWand, fn: &a.MagickSetResolution},
		{name: "MagickSetSize", lib: libWand, fn: &a.MagickSetSize},
		{name: "MagickStripImage", lib: libWand, fn: &a.MagickStripImage},
		{name: "MagickThresholdImage", lib: libWand, fn: &a.MagickThresholdImage},
		{name: "MagickThresholdImageChannel", lib: libWand, fn: &a.MagickThresholdImageChannel},
		{name: "MagickTransformImage", lib: libWand, fn: &a.MagickTransformImage},
		{name: "MagickTransparentPaintImage", lib: libWand, fn: &a.MagickTransparentPaintImage},
		{name: "MagickTransposeImage", lib: libWand, fn: &a.MagickTransposeImage},
		{name: "MagickTransverseImage", lib: libWand, fn: &a.MagickTransverseImage},
		{name: "MagickTrimImage", lib: libWand, fn: &a.MagickTrimImage},
		{name: "MagickUnsharpMaskImage", lib: libWand, fn: &a.MagickUnsharpMaskImage},
		{name: "MagickWandGenesis", lib: libWand, fn: &a.MagickWandGenesis},
		{name: "MagickWandTerminus", lib: libWand, fn: &a.MagickWandTerminus},
		{name: "MagickWriteImage", lib: libWand, fn: &a.MagickWriteImage},
		{name: "MagickWriteImageFile", lib: libWand, fn: &a.MagickWriteImageFile},
		{name: "MagickWriteImages", lib: libWand, fn: &a.MagickWriteImages},
		{name: "MagickWriteImagesFile", lib: libWand, fn: &a.MagickWriteImagesFile},
		{name: "NewMagickWand", lib: libWand, fn: &a.NewMagickWand},
		{name: "NewMagickWandFromImage", lib: libWand, fn: &a.NewMagickWandFromImage},
		// PixelIterator
		{name: "ClonePixelIterator", lib: libWand, fn: &a.ClonePixelIterator},
		{name: "DestroyPixelIterator", lib: libWand, fn: &a.DestroyPixelIterator},
		{name: "IsPixelIterator", lib: libWand, fn: &a.IsPixelIterator},
		{name: "NewPixelIterator", lib: libWand, fn: &a.NewPixelIterator},
		{name: "PixelClearIteratorException", lib: libWand, fn: &a.PixelClearIteratorException},
		{name: "PixelGetIteratorException", lib: libWand, fn: &a.PixelGetIteratorException},
		{name: "PixelGetNextIteratorRow", lib: libWand, fn: &a.PixelGetNextIteratorRow},
		{name: "PixelSetFirstIteratorRow", lib: libWand, fn: &a.PixelSetFirstIteratorRow},
		{name: "PixelSetIteratorRow", lib: libWand, fn: &a.PixelSetIteratorRow},
		// PixelWand
		{name: "DestroyPixelWand", lib: libWand, fn: &a.DestroyPixelWand},
		{name: "IsPixelWand", lib: libWand, fn: &a.IsPixelWand},
		{name: "IsPixelWandSimilar", lib: libWand, fn: &a.IsPixelWandSimilar},
		{name: "NewPixelWand", lib: libWand, fn: &a.NewPixelWand},
		{name: "PixelClearException", lib: libWand, fn: &a.PixelClearException},
		{name: "PixelGetAlpha", lib: libWand, fn: &a.PixelGetAlpha},
		{name: "PixelGetAlphaQuantum", lib: libWand, fn: &a.PixelGetAlphaQuantum},
		{name: "PixelGetBlue", lib: libWand, fn: &a.PixelGetBlue},
		{name: "PixelGetBlueQuantum", lib: libWand, fn: &a.PixelGetBlueQuantum},
		{name: "PixelGetColorAsNormalizedString", lib: libWand, fn: &a.PixelGetColorAsNormalizedString},
		{name: "PixelGetColorAsString", lib: libWand, fn: &a.PixelGetColorAsString},
		{name: "PixelGetColorCount", lib: libWand, fn: &a.PixelGetColorCount},
		{name: "PixelGetException", lib: libWand, fn: &a.PixelGetException},
		{name: "PixelGetGreen", lib: libWand, fn: &a.PixelGetGreen},
		{name: "PixelGetGreenQuantum", lib: libWand, fn: &a.PixelGetGreenQuantum},
		{name: "PixelGetMagickColor", lib: libWand, fn: &a.PixelGetMagickColor},
		{name: "PixelGetRed", lib: libWand, fn: &a.PixelGetRed},
		{name: "PixelGetRedQuantum", lib: libWand, fn: &a.PixelGetRedQuantum},
		{name: "PixelSetColor", lib: libWand, fn: &a.PixelSetColor},
		{name: "PixelSetMagickColor", lib: libWand, fn: &a.PixelSetMagickColor},
		// DrawingWand
		{name: "ClearDrawingWand", lib: libWand, fn: &a.ClearDrawingWand},
		{name: "CloneDrawingWand", lib: libWand, fn: &a.CloneDrawingWand},
		{name: "DestroyDrawingWand", lib: libWand, fn: &a.DestroyDrawingWand},
		{name: "DrawAffine", lib: libWand, fn: &a.DrawAffine},
		{name: "DrawAnnotation", lib: libWand, fn: &a.DrawAnnotation},
		{name: "DrawArc", lib: libWand, fn: &a.DrawArc},
		{name: "DrawBezier", lib: libWand, fn: &a.DrawBezier},
		{name: "DrawCircle", lib: libWand, fn: &a.DrawCircle},
		{name: "DrawClearException", lib: libWand, fn: &a.DrawClearException},
		{name: "DrawColor", lib: libWand, fn: &a.DrawColor},
		{name: "DrawComment", lib: libWand, fn: &a.DrawComment},
		{name: "DrawComposite", lib: libWand, fn: &a.DrawComposite},
		{name: "DrawEllipse", lib: libWand, fn: &a.DrawEllipse},
		{name: "DrawGetBorderColor", lib: libWand, fn: &a.DrawGetBorderColor},
		{name: "DrawGetClipPath", lib: libWand, fn: &a.DrawGetClipPath},
		{name: "DrawGetClipRule", lib: libWand, fn: &a.DrawGetClipRule},
		{name: "DrawGetClipUnits", lib: libWand, fn: &a.DrawGetClipUnits},
		{name: "DrawGetException", lib: libWand, fn: &a.DrawGetException},
		{name: "DrawGetFillColor", lib: libWand, fn: &a.DrawGetFillColor},
		{name: "DrawGetFillOpacity", lib: libWand, fn: &a.DrawGetFillOpacity},
		{name: "DrawGetFillRule", lib: libWand, fn: &a.DrawGetFillRule},
		{name: "DrawGetFont", lib: libWand, fn: &a.DrawGetFont},
		{name: "DrawGetFontFamily", lib: libWand, fn: &a.DrawGetFontFamily},
		{name: "DrawGetFontResolution", lib: libWand, fn: &a.DrawGetFontResolution},
		{name: "DrawGetFontSize", lib: libWand, fn: &a.DrawGetFontSize},
		{name: "DrawGetFontStretch", lib: libWand, fn: &a.DrawGetFontStretch},
		{name: "DrawGetFontStyle", lib: libWand, fn: &a.DrawGetFontStyle},
		{name: "DrawGetFontWeight", lib: libWand, fn: &a.DrawGetFontWeight},
		{name: "DrawGetGravity", lib: libWand, fn: &a.DrawGetGravity},
		{name: "DrawGetOpacity", lib: libWand, fn: &a.DrawGetOpacity},
		{name: "DrawGetStrokeAntialias", lib: libWand, fn: &a.DrawGetStrokeAntialias},
		{name: "DrawGetStrokeColor", lib: libWand, fn: &a.DrawGetStrokeColor},
		{name: "DrawGetStrokeDashArray", lib: libWand, fn: &a.DrawGetStrokeDashArray},
		{name: "DrawGetStrokeDashOffset", lib: libWand, fn: &a.DrawGetStrokeDashOffset},
		{name: "DrawGetStrokeLineCap", lib: libWand, fn: &a.DrawGetStrokeLineCap},
		{name: "DrawGetStrokeLineJoin", lib: libWand, fn: &a.DrawGetStrokeLineJoin},
		{name: "DrawGetStrokeMiterLimit", lib: libWand, fn: &a.DrawGetStrokeMiterLimit},
		{name: "DrawGetStrokeOpacity", lib: libWand, fn: &a.DrawGetStrokeOpacity},
		{name: "DrawGetStrokeWidth", lib: libWand, fn: &a.DrawGetStrokeWidth},
		{name: "DrawGetTextAlignment", lib: libWand, fn: &a.DrawGetTextAlignment},
		{name: "DrawGetTextAntialias", lib: libWand, fn: &a.DrawGetTextAntialias},
		{name: "DrawGetTextDecoration", lib: libWand, fn: &a.DrawGetTextDecoration},
		{name: "DrawGetTextDirection", lib: libWand, fn: &a.DrawGetTextDirection, optional: true},
		{name: "DrawGetTextEncoding", lib: libWand, fn: &a.DrawGetTextEncoding},
		{name: "DrawGetTextInterlineSpacing", lib: libWand, fn: &a.DrawGetTextInterlineSpacing, optional: true},
		{name: "DrawGetTextInterwordSpacing", lib: libWand, fn: &a.DrawGetTextInterwordSpacing},
		{name: "DrawGetTextKerning", lib: libWand, fn: &a.DrawGetTextKerning},
		{name: "DrawGetTextUnderColor", lib: libWand, fn: &a.DrawGetTextUnderColor},
		{name: "DrawGetVectorGraphics", lib: libWand, fn: &a.DrawGetVectorGraphics},
		{name: "DrawLine", lib: libWand, fn: &a.DrawLine},
		{name: "DrawMatte", lib: libWand, fn: &a.DrawMatte},
		{name: "DrawPathClose", lib: libWand, fn: &a.DrawPathClose},
		{name: "DrawPathCurveToAbsolute", lib: libWand, fn: &a.DrawPathCurveToAbsolute},
		{name: "DrawPathCurveToQuadraticBezierAbsolute", lib: libWand, fn: &a.DrawPathCurveToQuadraticBezierAbsolute},
		{name: "DrawPathCurveToQuadraticBezierRelative", lib: libWand, fn: &a.DrawPathCurveToQuadraticBezierRelative},
		{name: "DrawPathCurveToQuadraticBezierSmoothAbsolute", lib: libWand, fn: &a.DrawPathCurveToQuadraticBezierSmoothAbsolute},
		{name: "DrawPathCurveToQuadraticBezierSmoothRelative", lib: libWand, fn: &a.DrawPathCurveToQuadraticBezierSmoothRelative},
		{name: "DrawPathCurveToRelative", lib: libWand, fn: &a.DrawPathCurveToRelative},
		{name: "DrawPathCurveToSmoothAbsolute", lib: libWand, fn: &a.DrawPathCurveToSmoothAbsolute},
		{name: "DrawPathCurveToSmoothRelative", lib: libWand, fn: &a.DrawPathCurveToSmoothRelative},
		{name: "DrawPathEllipticArcAbsolute", lib: libWand, fn: &a.DrawPathEllipticArcAbsolute},
		{name: "DrawPathEllipticArcRelative", lib: libWand, fn: &a.DrawPathEllipticArcRelative},
		{name: "DrawPathFinish", lib: libWand, fn: &a.DrawPathFinish},
		{name: "DrawPathLineToAbsolute", lib: libWand, fn: &a.DrawPathLineToAbsolute},
		{name: "DrawPathLineToHorizontalAbsolute", lib: libWand, fn: &a.DrawPathLineToHorizontalAbsolute},
		{name: "DrawPathLineToHorizontalRelative", lib: libWand, fn: &a.DrawPathLineToHorizontalRelative},
		{name: "DrawPathLineToRelative", lib: libWand, fn: &a.DrawPathLineToRelative},
		{name: "DrawPathLineToVerticalAbsolute", lib: libWand, fn: &a.DrawPathLineToVerticalAbsolute},
		{name: "DrawPathLineToVerticalRelative", lib: libWand, fn: &a.DrawPathLineToVerticalRelative},
		{name: "DrawPathMoveToAbsolute", lib: libWand, fn: &a.DrawPathMoveToAbsolute},
		{name: "DrawPathMoveToRelative", lib: libWand, fn: &a.DrawPathMoveToRelative},
		{name: "DrawPathStart", lib: libWand, fn: &a.DrawPathStart},
		{name: "DrawPoint", lib: libWand, fn: &a.DrawPoint},
		{name: "DrawPolygon", lib: libWand, fn: &a.DrawPolygon},
		{name: "DrawPolyline", lib: libWand, fn: &a.DrawPolyline},
		{name: "DrawPopClipPath", lib: libWand, fn: &a.DrawPopClipPath},
		{name: "DrawPopDefs", lib: libWand, fn: &a.DrawPopDefs},
		{name: "DrawPopPattern", lib: libWand, fn: &a.DrawPopPattern},
		{name: "DrawPushClipPath", lib: libWand, fn: &a.DrawPushClipPath},
		{name: "DrawPushDefs", lib: libWand, fn: &a.DrawPushDefs},
		{name: "DrawPushPattern", lib: libWand, fn: &a.DrawPushPattern},
		{name: "DrawRectangle", lib: libWand, fn: &a.DrawRectangle},
		{name: "DrawResetVectorGraphics", lib: libWand, fn: &a.DrawResetVectorGraphics},
		{name: "DrawRotate", lib: libWand, fn: &a.DrawRotate},
		{name: "DrawRoundRectangle", lib: libWand, fn: &a.DrawRoundRectangle},
		{name: "DrawScale", lib: libWand, fn: &a.DrawScale},
		{name: "DrawSetBorderColor", lib: libWand, fn: &a.DrawSetBorderColor},
		{name: "DrawSetClipPath", lib: libWand, fn: &a.DrawSetClipPath},
		{name: "DrawSetClipRule", lib: libWand, fn: &a.DrawSetClipRule},
		{name: "DrawSetClipUnits", lib: libWand, fn: &a.DrawSetClipUnits},
		{name: "DrawSetFillColor", lib: libWand, fn: &a.DrawSetFillColor},
		{name: "DrawSetFillOpacity", lib: libWand, fn: &a.DrawSetFillOpacity},
		{name: "DrawSetFillPatternURL", lib: libWand, fn: &a.DrawSetFillPatternURL},
		{name: "DrawSetFillRule", lib: libWand, fn: &a.DrawSetFillRule},
		{name: "DrawSetFont", lib: libWand, fn: &a.DrawSetFont},
		{name: "DrawSetFontFamily", lib: libWand, fn: &a.DrawSetFontFamily},
		{name: "DrawSetFontResolution", lib: libWand, fn: &a.DrawSetFontResolution},
		{name: "DrawSetFontSize", lib: libWand, fn: &a.DrawSetFontSize},
		{name: "DrawSetFontStretch", lib: libWand, fn: &a.DrawSetFontStretch},
		{name: "DrawSetFontStyle", lib: libWand, fn: &a.DrawSetFontStyle},
		{name: "DrawSetFontWeight", lib: libWand, fn: &a.DrawSetFontWeight},
		{name: "DrawSetGravity", lib: libWand, fn: &a.DrawSetGravity},
		{name: "DrawSetOpacity", lib: libWand, fn: &a.DrawSetOpacity},
		{name: "DrawSetStrokeAntialias", lib: libWand, fn: &a.DrawSetStrokeAntialias},
		{name: "DrawSetStrokeColor", lib: libWand, fn: &a.DrawSetStrokeColor},
		{name: "DrawSetStrokeDashArray", lib: libWand, fn: &a.DrawSetStrokeDashArray},
		{name: "DrawSetStrokeDashOffset", lib: libWand, fn: &a.DrawSetStrokeDashOffset},
		{name: "DrawSetStrokeLineCap", lib: libWand, fn: &a.DrawSetStrokeLineCap},
		{name: "DrawSetStrokeLineJoin", lib: libWand, fn: &a.DrawSetStrokeLineJoin},
		{name: "DrawSetStrokeMiterLimit", lib: libWand, fn: &a.DrawSetStrokeMiterLimit},
		{name: "DrawSetStrokeOpacity", lib: libWand, fn: &a.DrawSetStrokeOpacity},
		{name: "DrawSetStrokePatternURL", lib: libWand, fn: &a.DrawSetStrokePatternURL},
		{name: "DrawSetStrokeWidth", lib: libWand, fn: &a.DrawSetStrokeWidth},
		{name: "DrawSetTextAlignment", lib: libWand, fn: &a.DrawSetTextAlignment},
		{name: "DrawSetTextAntialias", lib: libWand, fn: &a.DrawSetTextAntialias},
		{name: "DrawSetTextDecoration", lib: libWand, fn: &a.DrawSetTextDecoration},
		{name: "DrawSetTextDirection", lib: libWand, fn: &a.DrawSetTextDirection, optional: true},
		{name: "DrawSetTextEncoding", lib: libWand, fn: &a.DrawSetTextEncoding},
		{name: "DrawSetTextInterlineSpacing", lib: libWand, fn: &a.DrawSetTextInterlineSpacing, optional: true},
		{name: "DrawSetTextInterwordSpacing", lib: libWand, fn: &a.DrawSetTextInterwordSpacing},
		{name: "DrawSetTextKerning", lib: libWand, fn: &a.DrawSetTextKerning},
		{name: "DrawSetTextUnderColor", lib: libWand, fn: &a.DrawSetTextUnderColor},
		{name: "DrawSetVectorGraphics", lib: libWand, fn: &a.DrawSetVectorGraphics},
		{name: "DrawSetViewbox", lib: libWand, fn: &a.DrawSetViewbox},
		{name: "DrawSkewX", lib: libWand, fn: &a.DrawSkewX},
		{name: "DrawSkewY", lib: libWand, fn: &a.DrawSkewY},
		{name: "DrawTranslate", lib: libWand, fn: &a.DrawTranslate},
		{name: "IsDrawingWand", lib: libWand, fn: &a.IsDrawingWand},
		{name: "MagickDrawImage", lib: libWand, fn: &a.MagickDrawImage},
		{name: "NewDrawingWand", lib: libWand, fn: &a.NewDrawingWand},
		{name: "PopDrawingWand", lib: libWand, fn: &a.PopDrawingWand},
		{name: "PushDrawingWand", lib: libWand, fn: &a.PushDrawingWand},
		// Command runner
		{name: "MagickCommandGenesis", lib: libWand, fn: &a.MagickCommandGenesis},
		// C runtime
		{name: "fdopen", lib: libC, fn: &a.Fdopen},
		{name: "fflush", lib: libC, fn: &a.Fflush},
		{name: "free", lib: libC, fn: &a.Free},
	}
}
