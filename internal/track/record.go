// Package track defines the consolidated track record delivered on the
// event bus and the trajectory decimation applied before drawing.
package track

import (
	"encoding/json"
	"fmt"
)

// ClassType is the closed set of object classifications produced by the
// upstream analytics.
type ClassType string

const (
	// ClassBike indicates a bicycle or motorcycle
	ClassBike ClassType = "Bike"
	// ClassBus indicates a bus
	ClassBus ClassType = "Bus"
	// ClassCar indicates a car
	ClassCar ClassType = "Car"
	// ClassHuman indicates a person
	ClassHuman ClassType = "Human"
	// ClassTruck indicates a truck
	ClassTruck ClassType = "Truck"
	// ClassVehicle indicates a vehicle of unresolved kind
	ClassVehicle ClassType = "Vehicle"
)

// AllClassTypes lists every valid ClassType. The colour mapping tests
// iterate this list, so adding a variant here fails the tests until the
// mapping covers it.
var AllClassTypes = []ClassType{ClassBike, ClassBus, ClassCar, ClassHuman, ClassTruck, ClassVehicle}

// Valid reports whether c is one of the known class types.
func (c ClassType) Valid() bool {
	switch c {
	case ClassBike, ClassBus, ClassCar, ClassHuman, ClassTruck, ClassVehicle:
		return true
	}
	return false
}

// BoundingBox is an axis-aligned box in image-normalised coordinates.
// left <= right and top <= bottom are expected but not enforced; a
// malformed box flows through to the ground-point projection unchanged.
type BoundingBox struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// GroundPoint is the image-plane point where a tracked object meets the
// ground: the bottom-centre of its bounding box.
type GroundPoint struct {
	X float64
	Y float64
}

// GroundIntersection projects the box to its ground contact point.
func (b BoundingBox) GroundIntersection() GroundPoint {
	return GroundPoint{
		X: b.Left + (b.Right-b.Left)/2,
		Y: b.Bottom,
	}
}

// Observation is a single detection of the tracked object. Observations
// arrive ordered by capture time and the wire order is preserved.
type Observation struct {
	BoundingBox BoundingBox `json:"bounding_box"`
	Timestamp   string      `json:"timestamp"`
}

// ClassColor is one colour hypothesis attached to a classification.
// The render path does not use it.
type ClassColor struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Classification is one class hypothesis for the tracked object.
type Classification struct {
	Colors []ClassColor `json:"colors"`
	Score  float64      `json:"score"`
	Type   ClassType    `json:"type"`
}

// Record is one consolidated track event: a finished or in-progress
// tracked object with its observations and class hypotheses. A Record is
// immutable after decode and is discarded after one render cycle.
type Record struct {
	ID           string           `json:"id"`
	StartTime    string           `json:"start_time"`
	EndTime      *string          `json:"end_time"`
	Duration     float64          `json:"duration"`
	Observations []Observation    `json:"observations"`
	Classes      []Classification `json:"classes"`
}

// Decode parses one bus payload into a Record. A missing or null
// "classes" field decodes to an empty list; an unknown class type fails
// the whole record.
func Decode(payload string) (*Record, error) {
	var rec Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, err
	}
	for i, c := range rec.Classes {
		if !c.Type.Valid() {
			return nil, fmt.Errorf("classes[%d]: unknown class type %q", i, c.Type)
		}
	}
	return &rec, nil
}

// Ended reports whether the track has finished. Only finished tracks are
// drawn; an in-progress trajectory would be redrawn differently moments
// later.
func (r *Record) Ended() bool {
	return r.EndTime != nil && *r.EndTime != ""
}

// PrimaryClass returns the first classification, which determines the
// drawing colour. The rest of the list is ignored.
func (r *Record) PrimaryClass() (Classification, bool) {
	if len(r.Classes) == 0 {
		return Classification{}, false
	}
	return r.Classes[0], true
}
