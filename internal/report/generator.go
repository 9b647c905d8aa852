package report

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/username/checkin-tracker/internal/attendance"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Generation failure stages, kept distinct so callers can tell a report
// that was never built apart from one that failed to deliver
var (
	ErrInvalidRequest = errors.New("invalid report request")
	ErrTemplateFetch  = errors.New("failed to fetch timesheet template")
	ErrSerialize      = errors.New("failed to serialize timesheet")
)

const (
	orgFilePrefix     = "普菲特工作记录"
	mailSubject       = "TCL-IT技术服务2024-2026人力"
	projectNumber     = "41401150"
	projectName       = "TCL-IT技术服务2024-2026人力外包项目"
	projectRole       = "新方舟前端模块顾问"
	orgName           = "深圳普菲特信息科技股份有限公司"
	halfDayLeaveLabel = "请假半天"

	positionCell   = "B5"
	monthCell      = "B4"
	monthZhCell    = "F4"
	monthStartCell = "F5"
	monthEndCell   = "F6"
	fullSumCell    = "D40"
	halfSumCell    = "E40"

	// The template holds writable day rows 9 through 39 (31 days)
	dayRowStart         = 9
	dayRowEnd           = 39
	templateRowCapacity = dayRowEnd - dayRowStart + 1
)

// Request carries everything needed to generate one month's report
type Request struct {
	Attendance     attendance.MonthAttendance
	Year           int
	Month          time.Month
	Position       string
	EmployeeName   string
	RecipientEmail string
}

// Artifact is the generated report bundle. It is built fresh per call and
// used identically by the export and send paths.
type Artifact struct {
	FileBytes      []byte
	FileName       string
	Subject        string
	BodyText       string
	RecipientEmail string
	WorkedDays     int
}

// Generator turns a month's attendance into a populated timesheet artifact
type Generator struct {
	fetcher TemplateFetcher
	logger  *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(fetcher TemplateFetcher, logger *zap.Logger) *Generator {
	return &Generator{
		fetcher: fetcher,
		logger:  logger,
	}
}

func (r Request) validate() error {
	if r.Position == "" {
		return fmt.Errorf("%w: position is required", ErrInvalidRequest)
	}
	if r.EmployeeName == "" {
		return fmt.Errorf("%w: employee name is required", ErrInvalidRequest)
	}
	if r.RecipientEmail == "" {
		return fmt.Errorf("%w: recipient email is required", ErrInvalidRequest)
	}
	if len(r.Attendance) > templateRowCapacity {
		return fmt.Errorf("%w: month has %d days but the template holds %d rows",
			ErrInvalidRequest, len(r.Attendance), templateRowCapacity)
	}
	return nil
}

// Generate fetches the template, populates it with the month's attendance
// and composes the notification message
func (g *Generator) Generate(req Request) (*Artifact, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	tpl, err := g.fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateFetch, err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(tpl))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateFetch, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	first := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(req.Year, req.Month+1, 0, 0, 0, 0, 0, time.UTC)
	monthZh := fmt.Sprintf("%d月份", int(req.Month))

	cells := map[string]string{
		positionCell:   req.Position,
		monthCell:      first.Format("Jan-2006"),
		monthZhCell:    monthZh,
		monthStartCell: first.Format("2006/1/2"),
		monthEndCell:   last.Format("2006/1/2"),
	}
	for cell, value := range cells {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
		}
	}

	rows := buildDayRows(req.Attendance, req.Position)
	for i, row := range rows {
		rowNum := dayRowStart + i
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
			}
		}
	}

	fullDays := req.Attendance.CountByStatus(attendance.StatusFull)
	halfDays := req.Attendance.CountByStatus(attendance.StatusHalf)
	if err := f.SetCellValue(sheet, fullSumCell, fullDays); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	if err := f.SetCellValue(sheet, halfSumCell, halfDays); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	workedDays := req.Attendance.WorkedDays()
	monthLabel := first.Format("2006年01月")

	artifact := &Artifact{
		FileBytes:      buf.Bytes(),
		FileName:       fmt.Sprintf("%s-%s-%s-%d天.xlsx", orgFilePrefix, req.EmployeeName, monthLabel, workedDays),
		Subject:        mailSubject,
		BodyText:       buildBody(req.EmployeeName, monthZh, monthLabel, workedDays),
		RecipientEmail: req.RecipientEmail,
		WorkedDays:     workedDays,
	}

	g.logger.Info("Report generated",
		zap.String("file", artifact.FileName),
		zap.Int("worked_days", workedDays),
		zap.Int("full_days", fullDays),
		zap.Int("half_days", halfDays))

	return artifact, nil
}

// buildDayRows derives the 7-column template row for every record:
// date, work description, full marker, full count, half count,
// confirmation marker, half-day leave note
func buildDayRows(ma attendance.MonthAttendance, position string) [][7]string {
	workLabel := position + "与技术支持"

	rows := make([][7]string, 0, len(ma))
	for _, rec := range ma {
		var row [7]string
		row[0] = rec.Date
		if rec.Status != attendance.StatusAbsent {
			row[1] = workLabel
		}
		if rec.Status == attendance.StatusFull {
			row[2] = "Y"
			row[3] = "1"
			row[5] = "Y"
		}
		if rec.Status == attendance.StatusHalf {
			row[4] = "1"
			row[6] = halfDayLeaveLabel
		}
		rows = append(rows, row)
	}

	return rows
}

func buildBody(name, monthZh, monthLabel string, workedDays int) string {
	return fmt.Sprintf(`
外包项目-%s顾问-%s-%d天
您好：
麻烦确认一下本人%s工时，具体信息如下，工单详见附件，多谢。
项目号：%s
项目名称：%s
工作职责：%s
顾问姓名：%s
工作月份：%s
工作人天：%d

%s`,
		name, monthZh, workedDays,
		monthZh,
		projectNumber,
		projectName,
		projectRole,
		name,
		monthLabel,
		workedDays,
		orgName)
}
