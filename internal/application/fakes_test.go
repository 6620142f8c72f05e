package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"fwhr-bot/internal/domain/entity"
)

// frontalFace лицо анфас шириной 200 px, FWHR по бровям 200/70.
func frontalFace() entity.LandmarkSet {
	var p entity.LandmarkSet
	p[entity.LeftFaceEdge] = entity.Pt(100, 300)
	p[entity.RightFaceEdge] = entity.Pt(300, 300)
	p[entity.LeftEyebrowTop] = entity.Pt(150, 250)
	p[entity.RightEyebrowTop] = entity.Pt(250, 252)
	p[entity.NoseBridgeTop] = entity.Pt(200, 260)
	p[entity.NoseTip] = entity.Pt(200, 290)
	p[entity.LeftEyeOuter] = entity.Pt(140, 270)
	p[entity.LeftUpperEyelid] = entity.Pt(150, 265)
	p[entity.LeftLowerEyelid] = entity.Pt(150, 275)
	p[entity.RightUpperEyelid] = entity.Pt(235, 266)
	p[entity.RightEyelidOuter] = entity.Pt(250, 265)
	p[entity.RightEyeOuter] = entity.Pt(260, 270)
	p[entity.RightLowerEyelid] = entity.Pt(250, 275)
	p[entity.UpperLipLeft] = entity.Pt(180, 320)
	p[entity.UpperLipRight] = entity.Pt(220, 322)
	return p
}

// turnedFace лицо, повёрнутое вбок: отношение отступов 10
func turnedFace() entity.LandmarkSet {
	p := frontalFace()
	p[entity.LeftEyeOuter] = entity.Pt(200, 270)
	p[entity.RightEyeOuter] = entity.Pt(290, 270)
	return p
}

type fakeProvider struct {
	faces map[string][]entity.LandmarkSet
	calls atomic.Int32
}

func (f *fakeProvider) Landmarks(ctx context.Context, imageData []byte) ([]entity.LandmarkSet, error) {
	f.calls.Add(1)
	faces, ok := f.faces[string(imageData)]
	if !ok {
		return nil, errors.New("decode failed")
	}
	return faces, nil
}

type fakeRenderer struct {
	err   error
	calls int
}

func (f *fakeRenderer) DrawBox(imageData []byte, corners entity.CornerSet) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte(fmt.Sprintf("%s+box(%v,%v)", imageData, corners.TopLeft.Y, corners.BottomLeft.Y)), nil
}

type fakeSource struct {
	files map[string]string
}

func (f *fakeSource) List(root string) ([]string, error) {
	paths := make([]string, 0, len(f.files))
	for p := range f.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}

func (f *fakeSource) Read(ctx context.Context, location string) ([]byte, error) {
	data := f.files[location]
	if data == "text" {
		return nil, fmt.Errorf("%s: %w", location, entity.ErrUnsupportedImage)
	}
	return []byte(data), nil
}
