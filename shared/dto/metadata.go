package dto

import (
	"hotelfin/shared/constant"
	"hotelfin/shared/model"
	"hotelfin/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"createdAt"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.TimestampFormat)
}
