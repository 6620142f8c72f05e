package fwhr

import "fwhr-bot/internal/domain/entity"

// frontalFace лицо анфас шириной 200 px: width_im = 2, все метрики позы нулевые,
// отношение отступов равно 1.
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
