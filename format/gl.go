package format

// GLEnum is a value from the OpenGL enum namespace. The container
// formats this package translates describe their texel data with GL
// format/type/internalformat triples.
type GLEnum uint32

// Pixel data formats.
const (
	GLStencilIndex   GLEnum = 0x1901
	GLDepthComponent GLEnum = 0x1902
	GLDepthStencil   GLEnum = 0x84F9

	GLRed  GLEnum = 0x1903
	GLRG   GLEnum = 0x8227
	GLRGB  GLEnum = 0x1907
	GLBGR  GLEnum = 0x80E0
	GLRGBA GLEnum = 0x1908
	GLBGRA GLEnum = 0x80E1

	GLRedInteger  GLEnum = 0x8D94
	GLRGInteger   GLEnum = 0x8228
	GLRGBInteger  GLEnum = 0x8D98
	GLBGRInteger  GLEnum = 0x8D9A
	GLRGBAInteger GLEnum = 0x8D99
	GLBGRAInteger GLEnum = 0x8D9B
)

// Pixel data types.
const (
	GLByte          GLEnum = 0x1400
	GLUnsignedByte  GLEnum = 0x1401
	GLShort         GLEnum = 0x1402
	GLUnsignedShort GLEnum = 0x1403
	GLInt           GLEnum = 0x1404
	GLUnsignedInt   GLEnum = 0x1405
	GLFloat         GLEnum = 0x1406
	GLHalfFloat     GLEnum = 0x140B

	GLUnsignedShort565      GLEnum = 0x8363
	GLUnsignedShort4444     GLEnum = 0x8033
	GLUnsignedShort5551     GLEnum = 0x8034
	GLUnsignedInt2101010Rev GLEnum = 0x8368
	GLUnsignedInt248        GLEnum = 0x84FA
)

// Sized internal formats, uncompressed and packed.
const (
	GLR8          GLEnum = 0x8229
	GLRG8         GLEnum = 0x822B
	GLRGB8        GLEnum = 0x8051
	GLRGBA8       GLEnum = 0x8058
	GLR8Snorm     GLEnum = 0x8F94
	GLRG8Snorm    GLEnum = 0x8F95
	GLRGB8Snorm   GLEnum = 0x8F96
	GLRGBA8Snorm  GLEnum = 0x8F97
	GLR8UI        GLEnum = 0x8232
	GLRG8UI       GLEnum = 0x8238
	GLRGB8UI      GLEnum = 0x8D7D
	GLRGBA8UI     GLEnum = 0x8D7C
	GLR8I         GLEnum = 0x8231
	GLRG8I        GLEnum = 0x8237
	GLRGB8I       GLEnum = 0x8D8F
	GLRGBA8I      GLEnum = 0x8D8E
	GLSRGB8       GLEnum = 0x8C41
	GLSRGB8Alpha8 GLEnum = 0x8C43

	GLR16      GLEnum = 0x822A
	GLRG16     GLEnum = 0x822C
	GLRGBA16   GLEnum = 0x805B
	GLR16F     GLEnum = 0x822D
	GLRG16F    GLEnum = 0x822F
	GLRGB16F   GLEnum = 0x881B
	GLRGBA16F  GLEnum = 0x881A
	GLR16UI    GLEnum = 0x8234
	GLRG16UI   GLEnum = 0x823A
	GLRGB16UI  GLEnum = 0x8D77
	GLRGBA16UI GLEnum = 0x8D76
	GLR16I     GLEnum = 0x8233
	GLRG16I    GLEnum = 0x8239
	GLRGB16I   GLEnum = 0x8D89
	GLRGBA16I  GLEnum = 0x8D88

	GLR32F     GLEnum = 0x822E
	GLRG32F    GLEnum = 0x8230
	GLRGB32F   GLEnum = 0x8815
	GLRGBA32F  GLEnum = 0x8814
	GLR32UI    GLEnum = 0x8236
	GLRG32UI   GLEnum = 0x823C
	GLRGB32UI  GLEnum = 0x8D71
	GLRGBA32UI GLEnum = 0x8D70
	GLR32I     GLEnum = 0x8235
	GLRG32I    GLEnum = 0x823B
	GLRGB32I   GLEnum = 0x8D83
	GLRGBA32I  GLEnum = 0x8D82

	GLRGB565  GLEnum = 0x8D62
	GLRGBA4   GLEnum = 0x8056
	GLRGB5A1  GLEnum = 0x8057
	GLRGB10A2 GLEnum = 0x8059

	GLDepthComponent16  GLEnum = 0x81A5
	GLDepthComponent24  GLEnum = 0x81A6
	GLDepthComponent32F GLEnum = 0x8CAC
	GLDepth24Stencil8   GLEnum = 0x88F0
	GLDepth32FStencil8  GLEnum = 0x8CAD
	GLStencilIndex8     GLEnum = 0x8D48
)

// Compressed internal formats.
const (
	GLCompressedRGBS3TCDXT1       GLEnum = 0x83F0
	GLCompressedRGBAS3TCDXT1      GLEnum = 0x83F1
	GLCompressedRGBAS3TCDXT3      GLEnum = 0x83F2
	GLCompressedRGBAS3TCDXT5      GLEnum = 0x83F3
	GLCompressedSRGBS3TCDXT1      GLEnum = 0x8C4C
	GLCompressedSRGBAlphaS3TCDXT1 GLEnum = 0x8C4D
	GLCompressedSRGBAlphaS3TCDXT3 GLEnum = 0x8C4E
	GLCompressedSRGBAlphaS3TCDXT5 GLEnum = 0x8C4F

	GLCompressedRedRGTC1       GLEnum = 0x8DBB
	GLCompressedSignedRedRGTC1 GLEnum = 0x8DBC
	GLCompressedRGRGTC2        GLEnum = 0x8DBD
	GLCompressedSignedRGRGTC2  GLEnum = 0x8DBE

	GLCompressedRGBABPTCUnorm        GLEnum = 0x8E8C
	GLCompressedSRGBAlphaBPTCUnorm   GLEnum = 0x8E8D
	GLCompressedRGBBPTCSignedFloat   GLEnum = 0x8E8E
	GLCompressedRGBBPTCUnsignedFloat GLEnum = 0x8E8F

	GLCompressedR11EAC             GLEnum = 0x9270
	GLCompressedSignedR11EAC       GLEnum = 0x9271
	GLCompressedRG11EAC            GLEnum = 0x9272
	GLCompressedSignedRG11EAC      GLEnum = 0x9273
	GLCompressedRGB8ETC2           GLEnum = 0x9274
	GLCompressedSRGB8ETC2          GLEnum = 0x9275
	GLCompressedRGB8A1ETC2         GLEnum = 0x9276
	GLCompressedSRGB8A1ETC2        GLEnum = 0x9277
	GLCompressedRGBA8ETC2EAC       GLEnum = 0x9278
	GLCompressedSRGB8Alpha8ETC2EAC GLEnum = 0x9279

	GLCompressedRGBAASTC4x4   GLEnum = 0x93B0
	GLCompressedRGBAASTC5x4   GLEnum = 0x93B1
	GLCompressedRGBAASTC5x5   GLEnum = 0x93B2
	GLCompressedRGBAASTC6x5   GLEnum = 0x93B3
	GLCompressedRGBAASTC6x6   GLEnum = 0x93B4
	GLCompressedRGBAASTC8x5   GLEnum = 0x93B5
	GLCompressedRGBAASTC8x6   GLEnum = 0x93B6
	GLCompressedRGBAASTC8x8   GLEnum = 0x93B7
	GLCompressedRGBAASTC10x5  GLEnum = 0x93B8
	GLCompressedRGBAASTC10x6  GLEnum = 0x93B9
	GLCompressedRGBAASTC10x8  GLEnum = 0x93BA
	GLCompressedRGBAASTC10x10 GLEnum = 0x93BB
	GLCompressedRGBAASTC12x10 GLEnum = 0x93BC
	GLCompressedRGBAASTC12x12 GLEnum = 0x93BD

	GLCompressedSRGBASTC4x4   GLEnum = 0x93D0
	GLCompressedSRGBASTC5x4   GLEnum = 0x93D1
	GLCompressedSRGBASTC5x5   GLEnum = 0x93D2
	GLCompressedSRGBASTC6x5   GLEnum = 0x93D3
	GLCompressedSRGBASTC6x6   GLEnum = 0x93D4
	GLCompressedSRGBASTC8x5   GLEnum = 0x93D5
	GLCompressedSRGBASTC8x6   GLEnum = 0x93D6
	GLCompressedSRGBASTC8x8   GLEnum = 0x93D7
	GLCompressedSRGBASTC10x5  GLEnum = 0x93D8
	GLCompressedSRGBASTC10x6  GLEnum = 0x93D9
	GLCompressedSRGBASTC10x8  GLEnum = 0x93DA
	GLCompressedSRGBASTC10x10 GLEnum = 0x93DB
	GLCompressedSRGBASTC12x10 GLEnum = 0x93DC
	GLCompressedSRGBASTC12x12 GLEnum = 0x93DD
)
