package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
	"github.com/df07/go-spectral-pathtracer/pkg/spectrum"
)

// The scene document is JSON with explicit "type" discriminators on every
// sum-typed field, matching the variant names of the data model. Unknown
// discriminators and missing required fields fail with a descriptive error
// before any rendering starts.

// vecDoc accepts either a [x, y, z] tuple or named fields
type vecDoc struct {
	core.Vec3
}

func (v *vecDoc) UnmarshalJSON(data []byte) error {
	var tuple [3]float64
	if err := json.Unmarshal(data, &tuple); err == nil {
		v.Vec3 = core.NewVec3(tuple[0], tuple[1], tuple[2])
		return nil
	}
	var named struct {
		X, Y, Z float64
	}
	if err := json.Unmarshal(data, &named); err != nil {
		return fmt.Errorf("vector must be a 3-tuple or {x, y, z}: %s", err)
	}
	v.Vec3 = core.NewVec3(named.X, named.Y, named.Z)
	return nil
}

type spectrumDoc struct {
	Type        string        `json:"type"`
	Intensity   *float64      `json:"intensity"`
	Radiance    *float64      `json:"radiance"`
	Temperature *float64      `json:"temperature"`
	MaximumAt   *float64      `json:"maximum_at"`
	FWHM        *float64      `json:"full_width_at_half_maximum"`
	Scale       *float64      `json:"scale"`
	Spectra     []spectrumDoc `json:"spectra"`
	Index       *float64      `json:"index"`
	A           *float64      `json:"a"`
	B           *float64      `json:"b"`
	C           *float64      `json:"c"`
	D           *float64      `json:"d"`
	Coefficient *float64      `json:"coefficient"`
}

type materialDoc struct {
	Emittance   *spectrumDoc `json:"emittance"`
	Reflectance *struct {
		Attenuation *spectrumDoc `json:"attenuation"`
		Diffusion   *float64     `json:"diffusion"`
		Fuzz        *float64     `json:"fuzz"`
	} `json:"reflectance"`
	Transmittance *struct {
		RefractedIndex *spectrumDoc `json:"refracted_index"`
		IncidentIndex  *spectrumDoc `json:"incident_index"`
		Attenuation    *spectrumDoc `json:"attenuation"`
		Coefficient    *spectrumDoc `json:"coefficient"`
	} `json:"transmittance"`
}

type aabbDoc struct {
	Min *vecDoc `json:"min"`
	Max *vecDoc `json:"max"`
}

type surfaceDoc struct {
	Type     string       `json:"type"`
	Center   *vecDoc      `json:"center"`
	Radius   *float64     `json:"radius"`
	AABB     *aabbDoc     `json:"aabb"`
	Density  *float64     `json:"density"`
	Material *materialDoc `json:"material"`
}

type cameraDoc struct {
	Location    *vecDoc  `json:"location"`
	LookAt      *vecDoc  `json:"look_at"`
	Up          *vecDoc  `json:"up"`
	VerticalFOV *float64 `json:"vertical_fov"`
}

type sceneDoc struct {
	AmbientEmittance *spectrumDoc `json:"ambient_emittance"`
	Camera           *cameraDoc   `json:"camera"`
	Surfaces         []surfaceDoc `json:"surfaces"`
}

// LoadFile reads, parses and validates a scene document from a file
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads, parses and validates a scene document
func Load(r io.Reader) (*Scene, error) {
	var doc sceneDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScene, err)
	}
	return buildScene(&doc)
}

func buildScene(doc *sceneDoc) (*Scene, error) {
	if doc.AmbientEmittance == nil {
		return nil, fmt.Errorf("%w: ambient_emittance is required", ErrInvalidScene)
	}
	ambient, err := buildEmittance(doc.AmbientEmittance)
	if err != nil {
		return nil, fmt.Errorf("%w: ambient_emittance: %s", ErrInvalidScene, err)
	}

	camera := DefaultCamera()
	if doc.Camera != nil {
		if doc.Camera.Location != nil {
			camera.Location = doc.Camera.Location.Vec3
		}
		if doc.Camera.LookAt != nil {
			camera.LookAt = doc.Camera.LookAt.Vec3
		}
		if doc.Camera.Up != nil {
			camera.Up = doc.Camera.Up.Vec3
		}
		if doc.Camera.VerticalFOV != nil {
			camera.VerticalFOV = *doc.Camera.VerticalFOV
		}
	}

	surfaces := make([]geometry.Surface, 0, len(doc.Surfaces))
	for i, surfDoc := range doc.Surfaces {
		surface, err := buildSurface(&surfDoc)
		if err != nil {
			return nil, fmt.Errorf("%w: surface %d: %s", ErrInvalidScene, i, err)
		}
		surfaces = append(surfaces, surface)
	}

	return NewScene(ambient, camera, surfaces)
}

func buildSurface(doc *surfaceDoc) (geometry.Surface, error) {
	mat, err := buildMaterial(doc.Material)
	if err != nil {
		return nil, err
	}

	switch doc.Type {
	case "Sphere":
		if doc.Center == nil {
			return nil, fmt.Errorf("sphere: center is required")
		}
		if doc.Radius == nil {
			return nil, fmt.Errorf("sphere: radius is required")
		}
		return geometry.NewSphere(doc.Center.Vec3, *doc.Radius, mat), nil

	case "UniformFog":
		if doc.AABB == nil || doc.AABB.Min == nil || doc.AABB.Max == nil {
			return nil, fmt.Errorf("fog: aabb with min and max is required")
		}
		density := 1.0
		if doc.Density != nil {
			density = *doc.Density
		}
		bounds := core.NewAABB(doc.AABB.Min.Vec3, doc.AABB.Max.Vec3)
		return geometry.NewUniformFog(bounds, density, mat), nil

	default:
		return nil, fmt.Errorf("unknown surface type %q", doc.Type)
	}
}

// buildMaterial assembles a material; a nil document is the perfect absorber
func buildMaterial(doc *materialDoc) (*material.Material, error) {
	mat := &material.Material{}
	if doc == nil {
		return mat, nil
	}

	if doc.Emittance != nil {
		emittance, err := buildEmittance(doc.Emittance)
		if err != nil {
			return nil, fmt.Errorf("emittance: %s", err)
		}
		mat.Emittance = emittance
	}

	if doc.Reflectance != nil {
		attenuation := spectrum.Attenuation(spectrum.WhiteAttenuation())
		if doc.Reflectance.Attenuation != nil {
			var err error
			attenuation, err = buildAttenuation(doc.Reflectance.Attenuation)
			if err != nil {
				return nil, fmt.Errorf("reflectance: %s", err)
			}
		}
		mat.Reflectance = &material.Reflectance{
			Attenuation: attenuation,
			Diffusion:   doc.Reflectance.Diffusion,
			Fuzz:        doc.Reflectance.Fuzz,
		}
	}

	if doc.Transmittance != nil {
		if doc.Transmittance.RefractedIndex == nil {
			return nil, fmt.Errorf("transmittance: refracted_index is required")
		}
		refracted, err := buildRefractiveIndex(doc.Transmittance.RefractedIndex)
		if err != nil {
			return nil, fmt.Errorf("transmittance: refracted_index: %s", err)
		}
		transmittance := &material.Transmittance{RefractedIndex: refracted}

		if doc.Transmittance.IncidentIndex != nil {
			incident, err := buildRefractiveIndex(doc.Transmittance.IncidentIndex)
			if err != nil {
				return nil, fmt.Errorf("transmittance: incident_index: %s", err)
			}
			transmittance.IncidentIndex = incident
		}
		if doc.Transmittance.Attenuation != nil {
			attenuation, err := buildAttenuation(doc.Transmittance.Attenuation)
			if err != nil {
				return nil, fmt.Errorf("transmittance: %s", err)
			}
			transmittance.Attenuation = attenuation
		}
		if doc.Transmittance.Coefficient != nil {
			coefficient, err := buildCoefficient(doc.Transmittance.Coefficient)
			if err != nil {
				return nil, fmt.Errorf("transmittance: %s", err)
			}
			transmittance.Coefficient = coefficient
		}
		mat.Transmittance = transmittance
	}

	return mat, nil
}

func buildAttenuation(doc *spectrumDoc) (spectrum.Attenuation, error) {
	switch doc.Type {
	case "Constant":
		intensity := 1.0
		if doc.Intensity != nil {
			intensity = *doc.Intensity
		}
		return spectrum.ConstantAttenuation{Intensity: intensity}, nil

	case "Lorentzian":
		if doc.MaximumAt == nil || doc.FWHM == nil {
			return nil, fmt.Errorf("lorentzian: maximum_at and full_width_at_half_maximum are required")
		}
		scale := 1.0
		if doc.Scale != nil {
			scale = *doc.Scale
		}
		return spectrum.LorentzianAttenuation{
			MaximumAt: *doc.MaximumAt,
			FWHM:      *doc.FWHM,
			Scale:     scale,
		}, nil

	case "Sum":
		spectra := make([]spectrum.Attenuation, 0, len(doc.Spectra))
		for _, child := range doc.Spectra {
			built, err := buildAttenuation(&child)
			if err != nil {
				return nil, err
			}
			spectra = append(spectra, built)
		}
		return spectrum.SumAttenuation{Spectra: spectra}, nil

	default:
		return nil, fmt.Errorf("unknown attenuation type %q", doc.Type)
	}
}

func buildEmittance(doc *spectrumDoc) (spectrum.Emittance, error) {
	switch doc.Type {
	case "Constant":
		if doc.Radiance == nil {
			return nil, fmt.Errorf("constant emittance: radiance is required")
		}
		return spectrum.ConstantEmittance{Radiance: *doc.Radiance}, nil

	case "BlackBody":
		if doc.Temperature == nil {
			return nil, fmt.Errorf("black body: temperature is required")
		}
		return spectrum.BlackBody{Temperature: *doc.Temperature}, nil

	case "Lorentzian":
		if doc.MaximumAt == nil || doc.FWHM == nil || doc.Radiance == nil {
			return nil, fmt.Errorf("lorentzian emittance: maximum_at, full_width_at_half_maximum and radiance are required")
		}
		return spectrum.LorentzianEmittance{
			MaximumAt: *doc.MaximumAt,
			FWHM:      *doc.FWHM,
			Radiance:  *doc.Radiance,
		}, nil

	default:
		return nil, fmt.Errorf("unknown emittance type %q", doc.Type)
	}
}

func buildRefractiveIndex(doc *spectrumDoc) (spectrum.RefractiveIndex, error) {
	switch doc.Type {
	case "Constant":
		if doc.Index == nil {
			return nil, fmt.Errorf("constant refractive index: index is required")
		}
		return spectrum.ConstantIndex{Index: *doc.Index}, nil

	case "Cauchy2":
		if doc.A == nil || doc.B == nil {
			return nil, fmt.Errorf("cauchy2: coefficients a and b are required")
		}
		return spectrum.Cauchy2{A: *doc.A, B: *doc.B}, nil

	case "Cauchy4":
		if doc.A == nil || doc.B == nil || doc.C == nil || doc.D == nil {
			return nil, fmt.Errorf("cauchy4: coefficients a, b, c and d are required")
		}
		return spectrum.Cauchy4{A: *doc.A, B: *doc.B, C: *doc.C, D: *doc.D}, nil

	case "Water":
		return spectrum.Water, nil

	case "FusedQuartz":
		return spectrum.FusedQuartz, nil

	default:
		return nil, fmt.Errorf("unknown refractive index type %q", doc.Type)
	}
}

func buildCoefficient(doc *spectrumDoc) (spectrum.AttenuationCoefficient, error) {
	switch doc.Type {
	case "Constant":
		if doc.Coefficient == nil {
			return nil, fmt.Errorf("constant coefficient: coefficient is required")
		}
		return spectrum.ConstantCoefficient{Coefficient: *doc.Coefficient}, nil

	case "Water":
		scale := 1.0
		if doc.Scale != nil {
			scale = *doc.Scale
		}
		return spectrum.WaterCoefficient{Scale: scale}, nil

	default:
		return nil, fmt.Errorf("unknown attenuation coefficient type %q", doc.Type)
	}
}
