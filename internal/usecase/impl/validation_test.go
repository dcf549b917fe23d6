package impl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hokhau/internal/usecase"
)

func TestParsePayload(t *testing.T) {
	var out usecase.AddPersonPayload

	err := parsePayload(nil, &out)
	require.Error(t, err)
	assert.Equal(t, "Thiếu dữ liệu yêu cầu", err.Error())

	err = parsePayload(json.RawMessage(`{not json`), &out)
	require.Error(t, err)
	assert.Equal(t, "Dữ liệu yêu cầu không hợp lệ", err.Error())

	err = parsePayload(json.RawMessage(`{"hoTen":"Nguyễn Văn An"}`), &out)
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn An", out.HoTen)
}

func TestValidateAddPerson(t *testing.T) {
	valid := func() *usecase.AddPersonPayload {
		return &usecase.AddPersonPayload{
			HoTen:    "Nguyễn Văn An",
			NgaySinh: "1990-03-15",
			GioiTinh: "nam",
			NoiSinh:  "Hà Nội",
			QuanHe:   "con",
		}
	}

	tests := []struct {
		name    string
		mutate  func(p *usecase.AddPersonPayload)
		newborn bool
		target  bool
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(p *usecase.AddPersonPayload) {},
		},
		{
			name:    "missing name",
			mutate:  func(p *usecase.AddPersonPayload) { p.HoTen = "  " },
			wantMsg: "Họ tên là bắt buộc",
		},
		{
			name:    "missing birth date",
			mutate:  func(p *usecase.AddPersonPayload) { p.NgaySinh = "" },
			wantMsg: "Ngày sinh là bắt buộc",
		},
		{
			name:    "malformed birth date",
			mutate:  func(p *usecase.AddPersonPayload) { p.NgaySinh = "15/03/1990" },
			wantMsg: "Ngày sinh không hợp lệ",
		},
		{
			name:    "missing sex",
			mutate:  func(p *usecase.AddPersonPayload) { p.GioiTinh = "" },
			wantMsg: "Giới tính là bắt buộc",
		},
		{
			name:    "unknown sex",
			mutate:  func(p *usecase.AddPersonPayload) { p.GioiTinh = "male" },
			wantMsg: "Giới tính không hợp lệ",
		},
		{
			name:    "missing birthplace",
			mutate:  func(p *usecase.AddPersonPayload) { p.NoiSinh = "" },
			wantMsg: "Nơi sinh là bắt buộc",
		},
		{
			name:    "relation required without target household",
			mutate:  func(p *usecase.AddPersonPayload) { p.QuanHe = "" },
			wantMsg: "Quan hệ với chủ hộ là bắt buộc",
		},
		{
			name:   "relation optional with target household",
			mutate: func(p *usecase.AddPersonPayload) { p.QuanHe = "" },
			target: true,
		},
		{
			name:    "unknown relation",
			mutate:  func(p *usecase.AddPersonPayload) { p.QuanHe = "hang_xom" },
			wantMsg: "Quan hệ với chủ hộ không hợp lệ",
		},
		{
			name:    "newborn without marker",
			mutate:  func(p *usecase.AddPersonPayload) {},
			newborn: true,
			wantMsg: "Yêu cầu thêm trẻ mới sinh phải có đánh dấu isMoiSinh",
		},
		{
			name:    "newborn with marker",
			mutate:  func(p *usecase.AddPersonPayload) { p.IsMoiSinh = true; p.QuanHe = "" },
			newborn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)

			err := validateAddPerson(p, tt.newborn, tt.target)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateTemporaryResidence(t *testing.T) {
	valid := func() *usecase.TemporaryResidencePayload {
		return &usecase.TemporaryResidencePayload{
			NhanKhauID: uintPtr(7),
			TuNgay:     "2026-01-01",
			DenNgay:    "2026-06-30",
			DiaChi:     "45 Lê Lợi, Huế",
			LyDo:       "Làm việc theo hợp đồng",
		}
	}

	tests := []struct {
		name    string
		mutate  func(p *usecase.TemporaryResidencePayload)
		wantMsg string
	}{
		{
			name:   "valid existing resident",
			mutate: func(p *usecase.TemporaryResidencePayload) {},
		},
		{
			name:    "missing start date",
			mutate:  func(p *usecase.TemporaryResidencePayload) { p.TuNgay = "" },
			wantMsg: "Ngày bắt đầu (tuNgay) là bắt buộc",
		},
		{
			name:    "missing end date",
			mutate:  func(p *usecase.TemporaryResidencePayload) { p.DenNgay = "" },
			wantMsg: "Ngày kết thúc (denNgay) là bắt buộc",
		},
		{
			name:    "missing address",
			mutate:  func(p *usecase.TemporaryResidencePayload) { p.DiaChi = " " },
			wantMsg: "Địa chỉ tạm trú là bắt buộc",
		},
		{
			name:    "missing reason",
			mutate:  func(p *usecase.TemporaryResidencePayload) { p.LyDo = "" },
			wantMsg: "Lý do là bắt buộc",
		},
		{
			name: "neither resident nor person",
			mutate: func(p *usecase.TemporaryResidencePayload) {
				p.NhanKhauID = nil
				p.Person = nil
			},
			wantMsg: "Thiếu thông tin nhân khẩu",
		},
		{
			name: "new person validated like add person",
			mutate: func(p *usecase.TemporaryResidencePayload) {
				p.NhanKhauID = nil
				p.Person = &usecase.AddPersonPayload{NgaySinh: "1995-01-01", GioiTinh: "nu", NoiSinh: "Huế"}
			},
			wantMsg: "Họ tên là bắt buộc",
		},
		{
			name:    "start not before end",
			mutate:  func(p *usecase.TemporaryResidencePayload) { p.DenNgay = "2026-01-01" },
			wantMsg: "Ngày bắt đầu phải trước ngày kết thúc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)

			err := validateTemporaryResidence(p)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateTemporaryAbsence(t *testing.T) {
	valid := func() *usecase.TemporaryAbsencePayload {
		return &usecase.TemporaryAbsencePayload{
			NhanKhauID: 7,
			TuNgay:     "2026-02-01",
			LyDo:       "Đi công tác dài hạn",
		}
	}

	t.Run("valid open ended", func(t *testing.T) {
		assert.NoError(t, validateTemporaryAbsence(valid()))
	})

	t.Run("missing resident", func(t *testing.T) {
		p := valid()
		p.NhanKhauID = 0
		err := validateTemporaryAbsence(p)
		require.Error(t, err)
		assert.Equal(t, "Nhân khẩu (nhanKhauId) là bắt buộc", err.Error())
	})

	t.Run("end before start", func(t *testing.T) {
		p := valid()
		p.DenNgay = "2026-01-15"
		err := validateTemporaryAbsence(p)
		require.Error(t, err)
		assert.Equal(t, "Ngày kết thúc phải sau ngày bắt đầu", err.Error())
	})

	t.Run("end date optional but must parse", func(t *testing.T) {
		p := valid()
		p.DenNgay = "soon"
		err := validateTemporaryAbsence(p)
		require.Error(t, err)
		assert.Equal(t, "Ngày kết thúc không hợp lệ", err.Error())
	})
}

func TestValidateSplitHousehold(t *testing.T) {
	valid := func() *usecase.SplitHouseholdPayload {
		return &usecase.SplitHouseholdPayload{
			SelectedNhanKhauIDs: []uint{4, 5},
			NewChuHoID:          4,
			NewAddress:          "88 Nguyễn Trãi",
			ExpectedDate:        "2026-09-01",
			Reason:              "Con trưởng lập gia đình riêng",
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateSplitHousehold(valid()))
	})

	t.Run("empty selection", func(t *testing.T) {
		p := valid()
		p.SelectedNhanKhauIDs = nil
		err := validateSplitHousehold(p)
		require.Error(t, err)
		assert.Equal(t, "Danh sách nhân khẩu tách hộ không được rỗng", err.Error())
	})

	t.Run("new head outside selection", func(t *testing.T) {
		p := valid()
		p.NewChuHoID = 9
		err := validateSplitHousehold(p)
		require.Error(t, err)
		assert.Equal(t, "Chủ hộ mới phải nằm trong danh sách nhân khẩu được tách", err.Error())
	})

	t.Run("missing new address", func(t *testing.T) {
		p := valid()
		p.NewAddress = ""
		err := validateSplitHousehold(p)
		require.Error(t, err)
		assert.Equal(t, "Địa chỉ hộ mới là bắt buộc", err.Error())
	})
}

func TestValidateDeceased(t *testing.T) {
	t.Run("accepts personId alias", func(t *testing.T) {
		p := &usecase.DeceasedPayload{
			PersonID: uintPtr(3),
			NgayMat:  "2026-04-10",
			LyDo:     "Bệnh hiểm nghèo",
		}
		assert.NoError(t, validateDeceased(p))
	})

	t.Run("missing person", func(t *testing.T) {
		p := &usecase.DeceasedPayload{NgayMat: "2026-04-10", LyDo: "Bệnh"}
		err := validateDeceased(p)
		require.Error(t, err)
		assert.Equal(t, "Nhân khẩu khai tử (nhanKhauId) là bắt buộc", err.Error())
	})

	t.Run("missing death date", func(t *testing.T) {
		p := &usecase.DeceasedPayload{NhanKhauID: uintPtr(3), LyDo: "Bệnh"}
		err := validateDeceased(p)
		require.Error(t, err)
		assert.Equal(t, "Ngày mất là bắt buộc", err.Error())
	})
}
