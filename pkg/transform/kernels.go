package transform

// Standard 3x3 kernels. The convolution engine itself is kernel-agnostic;
// these are the presets the CLI exposes by name.

// IdentityKernel returns the 3x3 kernel that reproduces the source image.
func IdentityKernel() Kernel {
	k, _ := NewKernel([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	return k
}

// MeanBlurKernel returns the 3x3 box blur kernel.
func MeanBlurKernel() Kernel {
	k, _ := NewKernel([][]float64{
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
	})
	return k
}

// GaussianBlurKernel returns the 3x3 gaussian approximation kernel.
func GaussianBlurKernel() Kernel {
	k, _ := NewKernel([][]float64{
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
		{2.0 / 16, 4.0 / 16, 2.0 / 16},
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
	})
	return k
}

// SobelHorizontalKernel returns the sobel kernel for horizontal edges.
func SobelHorizontalKernel() Kernel {
	k, _ := NewKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
	return k
}

// SobelVerticalKernel returns the sobel kernel for vertical edges.
func SobelVerticalKernel() Kernel {
	k, _ := NewKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
	return k
}

// PresetKernel looks up a builtin kernel by the name the CLI exposes.
func PresetKernel(name string) (Kernel, bool) {
	switch name {
	case "identity":
		return IdentityKernel(), true
	case "mean-blur":
		return MeanBlurKernel(), true
	case "gaussian-blur":
		return GaussianBlurKernel(), true
	case "sobel-horizontal":
		return SobelHorizontalKernel(), true
	case "sobel-vertical":
		return SobelVerticalKernel(), true
	default:
		return Kernel{}, false
	}
}

// PresetKernelNames lists the builtin kernel names in a stable order.
func PresetKernelNames() []string {
	return []string{"identity", "mean-blur", "gaussian-blur", "sobel-horizontal", "sobel-vertical"}
}

// LinearScale returns a scaling function computing sum/divisor + bias.
// A zero divisor is treated as 1. A bias of 128 centers signed edge
// responses, which is the usual choice for the sobel kernels.
func LinearScale(divisor, bias float64) ScaleFunc {
	if divisor == 0 {
		divisor = 1
	}
	return func(sum float64) float64 {
		return sum/divisor + bias
	}
}
