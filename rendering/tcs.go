package rendering

import "github.com/mmuldo/colorimetry/spectral"

// tcsNames are the Munsell designations of the CIE 13.3 test color samples.
var tcsNames = [14]string{
	"7.5 R 6/4 light greyish red",
	"5 Y 6/4 dark greyish yellow",
	"5 GY 6/8 strong yellow green",
	"2.5 G 6/6 moderate yellowish green",
	"10 BG 6/4 light bluish green",
	"5 PB 6/8 light blue",
	"2.5 P 6/8 light violet",
	"10 P 6/8 light reddish purple",
	"4.5 R 4/13 strong red",
	"5 Y 8/10 strong yellow",
	"4.5 G 5/8 strong green",
	"3 PB 3/11 strong blue",
	"5 YR 8/4 light yellowish pink",
	"5 GY 4/4 moderate olive green",
}

// tcsTable holds the CIE 13.3 test color sample reflectances on the
// standard grid, TCS01 first.
var tcsTable = [NumTCS]spectral.Spectrum{
	{
		0.219, 0.239, 0.252, 0.256, 0.256, 0.254, 0.252, 0.248, 0.244,
		0.240, 0.237, 0.232, 0.230, 0.226, 0.225, 0.222, 0.220, 0.218,
		0.216, 0.214, 0.214, 0.214, 0.216, 0.218, 0.223, 0.225, 0.226,
		0.226, 0.225, 0.225, 0.227, 0.230, 0.236, 0.245, 0.253, 0.262,
		0.272, 0.283, 0.298, 0.318, 0.341, 0.367, 0.390, 0.409, 0.424,
		0.435, 0.442, 0.448, 0.452, 0.455, 0.457, 0.458, 0.460, 0.462,
		0.463, 0.464, 0.465, 0.466, 0.466, 0.465, 0.464, 0.464, 0.463,
		0.463, 0.464, 0.465, 0.466, 0.466, 0.466, 0.466, 0.467, 0.467,
		0.467, 0.467, 0.467, 0.467, 0.467, 0.467, 0.467, 0.467, 0.467,
	},
	{
		0.070, 0.079, 0.089, 0.101, 0.111, 0.116, 0.118, 0.120, 0.121,
		0.122, 0.122, 0.122, 0.123, 0.124, 0.127, 0.128, 0.131, 0.134,
		0.138, 0.143, 0.150, 0.159, 0.174, 0.190, 0.207, 0.225, 0.242,
		0.253, 0.260, 0.264, 0.267, 0.269, 0.272, 0.276, 0.282, 0.289,
		0.299, 0.309, 0.322, 0.329, 0.335, 0.339, 0.341, 0.341, 0.342,
		0.342, 0.342, 0.341, 0.341, 0.339, 0.339, 0.338, 0.338, 0.337,
		0.336, 0.335, 0.334, 0.332, 0.332, 0.331, 0.331, 0.330, 0.329,
		0.328, 0.328, 0.327, 0.326, 0.325, 0.324, 0.324, 0.324, 0.323,
		0.322, 0.321, 0.320, 0.318, 0.316, 0.315, 0.315, 0.314, 0.314,
	},
	{
		0.065, 0.068, 0.070, 0.072, 0.073, 0.073, 0.074, 0.074, 0.074,
		0.073, 0.073, 0.073, 0.073, 0.073, 0.074, 0.075, 0.077, 0.080,
		0.085, 0.094, 0.109, 0.126, 0.148, 0.172, 0.198, 0.221, 0.241,
		0.260, 0.278, 0.302, 0.339, 0.370, 0.392, 0.399, 0.400, 0.393,
		0.380, 0.365, 0.349, 0.332, 0.315, 0.299, 0.285, 0.272, 0.264,
		0.257, 0.252, 0.247, 0.241, 0.235, 0.229, 0.224, 0.220, 0.217,
		0.216, 0.216, 0.219, 0.224, 0.230, 0.238, 0.251, 0.269, 0.288,
		0.312, 0.340, 0.366, 0.390, 0.412, 0.431, 0.447, 0.460, 0.472,
		0.481, 0.488, 0.493, 0.497, 0.500, 0.502, 0.505, 0.510, 0.516,
	},
	{
		0.074, 0.083, 0.093, 0.105, 0.116, 0.121, 0.124, 0.126, 0.128,
		0.131, 0.135, 0.139, 0.144, 0.151, 0.161, 0.172, 0.186, 0.205,
		0.229, 0.254, 0.281, 0.308, 0.332, 0.352, 0.370, 0.383, 0.390,
		0.394, 0.395, 0.392, 0.385, 0.377, 0.367, 0.354, 0.341, 0.327,
		0.312, 0.296, 0.280, 0.263, 0.247, 0.229, 0.214, 0.198, 0.185,
		0.175, 0.169, 0.164, 0.160, 0.156, 0.154, 0.151, 0.149, 0.148,
		0.148, 0.148, 0.149, 0.151, 0.154, 0.158, 0.162, 0.165, 0.168,
		0.170, 0.171, 0.170, 0.168, 0.166, 0.164, 0.164, 0.165, 0.168,
		0.172, 0.177, 0.181, 0.185, 0.189, 0.192, 0.194, 0.197, 0.200,
	},
	{
		0.295, 0.306, 0.310, 0.312, 0.313, 0.315, 0.319, 0.322, 0.326,
		0.330, 0.334, 0.339, 0.346, 0.352, 0.360, 0.369, 0.381, 0.394,
		0.403, 0.410, 0.415, 0.418, 0.419, 0.417, 0.413, 0.409, 0.403,
		0.396, 0.389, 0.381, 0.372, 0.363, 0.353, 0.342, 0.331, 0.320,
		0.308, 0.296, 0.284, 0.271, 0.260, 0.247, 0.232, 0.220, 0.210,
		0.200, 0.194, 0.189, 0.185, 0.183, 0.180, 0.177, 0.176, 0.175,
		0.175, 0.175, 0.175, 0.177, 0.180, 0.183, 0.186, 0.189, 0.192,
		0.195, 0.199, 0.200, 0.199, 0.198, 0.196, 0.195, 0.195, 0.196,
		0.197, 0.200, 0.203, 0.205, 0.208, 0.212, 0.215, 0.217, 0.219,
	},
	{
		0.151, 0.203, 0.265, 0.339, 0.410, 0.464, 0.492, 0.508, 0.517,
		0.524, 0.531, 0.538, 0.544, 0.551, 0.556, 0.556, 0.554, 0.549,
		0.541, 0.531, 0.519, 0.504, 0.488, 0.469, 0.450, 0.431, 0.414,
		0.395, 0.377, 0.358, 0.341, 0.325, 0.309, 0.293, 0.279, 0.265,
		0.253, 0.241, 0.234, 0.227, 0.225, 0.222, 0.221, 0.220, 0.220,
		0.220, 0.220, 0.220, 0.223, 0.227, 0.233, 0.239, 0.244, 0.251,
		0.258, 0.263, 0.268, 0.273, 0.278, 0.284, 0.291, 0.297, 0.302,
		0.306, 0.311, 0.314, 0.315, 0.318, 0.320, 0.321, 0.322, 0.323,
		0.324, 0.325, 0.326, 0.326, 0.327, 0.328, 0.329, 0.329, 0.329,
	},
	{
		0.378, 0.459, 0.524, 0.546, 0.551, 0.555, 0.559, 0.560, 0.561,
		0.558, 0.556, 0.551, 0.544, 0.535, 0.522, 0.506, 0.488, 0.469,
		0.448, 0.429, 0.408, 0.385, 0.363, 0.341, 0.324, 0.311, 0.301,
		0.291, 0.283, 0.273, 0.265, 0.260, 0.257, 0.257, 0.259, 0.260,
		0.260, 0.258, 0.256, 0.254, 0.254, 0.259, 0.270, 0.284, 0.302,
		0.324, 0.344, 0.362, 0.377, 0.389, 0.400, 0.410, 0.420, 0.429,
		0.438, 0.445, 0.452, 0.457, 0.462, 0.466, 0.468, 0.470, 0.473,
		0.477, 0.483, 0.489, 0.496, 0.503, 0.511, 0.518, 0.525, 0.532,
		0.539, 0.546, 0.553, 0.559, 0.565, 0.570, 0.575, 0.578, 0.581,
	},
	{
		0.426, 0.442, 0.444, 0.439, 0.434, 0.427, 0.422, 0.418, 0.416,
		0.410, 0.403, 0.396, 0.388, 0.381, 0.372, 0.364, 0.355, 0.346,
		0.338, 0.331, 0.322, 0.315, 0.306, 0.298, 0.290, 0.283, 0.277,
		0.271, 0.266, 0.260, 0.254, 0.250, 0.247, 0.245, 0.245, 0.246,
		0.248, 0.251, 0.256, 0.261, 0.270, 0.280, 0.296, 0.315, 0.342,
		0.373, 0.407, 0.442, 0.478, 0.516, 0.552, 0.585, 0.614, 0.638,
		0.659, 0.676, 0.691, 0.704, 0.713, 0.723, 0.729, 0.735, 0.742,
		0.745, 0.748, 0.750, 0.751, 0.751, 0.750, 0.748, 0.745, 0.741,
		0.736, 0.730, 0.721, 0.712, 0.703, 0.692, 0.680, 0.667, 0.653,
	},
	{
		0.039, 0.040, 0.039, 0.036, 0.033, 0.030, 0.029, 0.028, 0.027,
		0.026, 0.026, 0.026, 0.025, 0.025, 0.025, 0.024, 0.024, 0.023,
		0.023, 0.022, 0.023, 0.022, 0.022, 0.021, 0.021, 0.021, 0.021,
		0.021, 0.021, 0.021, 0.021, 0.021, 0.021, 0.021, 0.021, 0.022,
		0.023, 0.024, 0.024, 0.025, 0.026, 0.030, 0.044, 0.086, 0.179,
		0.319, 0.471, 0.602, 0.697, 0.759, 0.790, 0.809, 0.822, 0.830,
		0.836, 0.840, 0.843, 0.846, 0.848, 0.850, 0.851, 0.852, 0.853,
		0.855, 0.856, 0.858, 0.859, 0.860, 0.861, 0.862, 0.863, 0.864,
		0.864, 0.865, 0.866, 0.867, 0.867, 0.868, 0.868, 0.869, 0.869,
	},
	{
		0.066, 0.063, 0.060, 0.058, 0.057, 0.057, 0.057, 0.058, 0.058,
		0.059, 0.060, 0.061, 0.062, 0.064, 0.067, 0.069, 0.074, 0.079,
		0.085, 0.093, 0.103, 0.116, 0.136, 0.165, 0.205, 0.260, 0.324,
		0.394, 0.464, 0.525, 0.574, 0.611, 0.637, 0.656, 0.669, 0.677,
		0.684, 0.689, 0.692, 0.696, 0.699, 0.702, 0.704, 0.706, 0.707,
		0.709, 0.710, 0.711, 0.712, 0.713, 0.714, 0.714, 0.715, 0.715,
		0.716, 0.716, 0.717, 0.717, 0.718, 0.718, 0.719, 0.719, 0.719,
		0.720, 0.720, 0.720, 0.720, 0.721, 0.721, 0.721, 0.721, 0.721,
		0.721, 0.721, 0.721, 0.721, 0.722, 0.722, 0.722, 0.722, 0.722,
	},
	{
		0.058, 0.062, 0.064, 0.064, 0.064, 0.063, 0.062, 0.062, 0.061,
		0.060, 0.060, 0.060, 0.061, 0.062, 0.065, 0.070, 0.077, 0.086,
		0.101, 0.121, 0.144, 0.171, 0.201, 0.231, 0.257, 0.281, 0.301,
		0.319, 0.332, 0.339, 0.337, 0.327, 0.311, 0.289, 0.263, 0.235,
		0.207, 0.180, 0.154, 0.132, 0.112, 0.096, 0.082, 0.073, 0.066,
		0.061, 0.057, 0.054, 0.052, 0.051, 0.049, 0.048, 0.047, 0.047,
		0.047, 0.047, 0.047, 0.047, 0.048, 0.048, 0.049, 0.050, 0.051,
		0.053, 0.055, 0.059, 0.063, 0.069, 0.077, 0.087, 0.098, 0.112,
		0.127, 0.143, 0.161, 0.179, 0.196, 0.212, 0.227, 0.240, 0.252,
	},
	{
		0.363, 0.401, 0.433, 0.464, 0.490, 0.511, 0.523, 0.533, 0.533,
		0.530, 0.526, 0.515, 0.498, 0.479, 0.454, 0.432, 0.405, 0.372,
		0.339, 0.310, 0.280, 0.251, 0.225, 0.200, 0.179, 0.155, 0.138,
		0.118, 0.103, 0.088, 0.076, 0.065, 0.054, 0.046, 0.038, 0.030,
		0.023, 0.022, 0.022, 0.021, 0.021, 0.021, 0.021, 0.020, 0.020,
		0.020, 0.021, 0.021, 0.021, 0.022, 0.022, 0.022, 0.023, 0.024,
		0.024, 0.025, 0.026, 0.027, 0.029, 0.031, 0.033, 0.036, 0.039,
		0.043, 0.048, 0.053, 0.059, 0.066, 0.073, 0.080, 0.087, 0.094,
		0.101, 0.108, 0.115, 0.122, 0.128, 0.134, 0.140, 0.146, 0.151,
	},
	{
		0.294, 0.317, 0.338, 0.354, 0.367, 0.377, 0.385, 0.391, 0.396,
		0.400, 0.403, 0.407, 0.410, 0.413, 0.416, 0.420, 0.423, 0.426,
		0.432, 0.437, 0.443, 0.449, 0.456, 0.462, 0.469, 0.475, 0.481,
		0.487, 0.496, 0.505, 0.516, 0.529, 0.544, 0.560, 0.578, 0.595,
		0.612, 0.627, 0.640, 0.652, 0.662, 0.670, 0.678, 0.685, 0.691,
		0.696, 0.701, 0.705, 0.709, 0.713, 0.716, 0.720, 0.723, 0.726,
		0.728, 0.732, 0.735, 0.737, 0.739, 0.742, 0.745, 0.747, 0.749,
		0.751, 0.753, 0.756, 0.758, 0.760, 0.762, 0.763, 0.765, 0.768,
		0.769, 0.771, 0.772, 0.774, 0.775, 0.776, 0.778, 0.779, 0.781,
	},
	{
		0.056, 0.057, 0.057, 0.058, 0.059, 0.059, 0.060, 0.060, 0.060,
		0.060, 0.060, 0.061, 0.061, 0.062, 0.062, 0.063, 0.063, 0.064,
		0.066, 0.069, 0.072, 0.076, 0.081, 0.088, 0.096, 0.105, 0.112,
		0.120, 0.127, 0.133, 0.137, 0.141, 0.143, 0.144, 0.144, 0.142,
		0.140, 0.135, 0.131, 0.126, 0.121, 0.116, 0.111, 0.105, 0.101,
		0.097, 0.093, 0.091, 0.088, 0.087, 0.085, 0.084, 0.084, 0.084,
		0.085, 0.087, 0.090, 0.096, 0.106, 0.122, 0.143, 0.170, 0.201,
		0.233, 0.266, 0.296, 0.321, 0.343, 0.360, 0.374, 0.384, 0.392,
		0.398, 0.402, 0.406, 0.408, 0.410, 0.412, 0.412, 0.413, 0.414,
	},
}
