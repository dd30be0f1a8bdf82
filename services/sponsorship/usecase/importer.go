package usecase

import (
	"context"
	"io"
	"sponsorship/domain"
	"sponsorship/spreadsheet"
	"strings"
)

// importColumns is the positional layout of an import sheet, one entry per column.
var importColumns = []func(f *domain.ChildForm) *string{
	func(f *domain.ChildForm) *string { return &f.FullName },
	func(f *domain.ChildForm) *string { return &f.PreferredName },
	func(f *domain.ChildForm) *string { return &f.Residence },
	func(f *domain.ChildForm) *string { return &f.Tribe },
	func(f *domain.ChildForm) *string { return &f.Gender },
	func(f *domain.ChildForm) *string { return &f.DateOfBirth },
	func(f *domain.ChildForm) *string { return &f.Weight },
	func(f *domain.ChildForm) *string { return &f.Height },
	func(f *domain.ChildForm) *string { return &f.CInterest },
	func(f *domain.ChildForm) *string { return &f.IsChildInSchool },
	func(f *domain.ChildForm) *string { return &f.IsSponsored },
	func(f *domain.ChildForm) *string { return &f.FatherName },
	func(f *domain.ChildForm) *string { return &f.IsFatherAlive },
	func(f *domain.ChildForm) *string { return &f.FatherDescription },
	func(f *domain.ChildForm) *string { return &f.MotherName },
	func(f *domain.ChildForm) *string { return &f.IsMotherAlive },
	func(f *domain.ChildForm) *string { return &f.MotherDescription },
	func(f *domain.ChildForm) *string { return &f.Guardian },
	func(f *domain.ChildForm) *string { return &f.GuardianContact },
	func(f *domain.ChildForm) *string { return &f.RelationshipWithGuardian },
	func(f *domain.ChildForm) *string { return &f.Siblings },
	func(f *domain.ChildForm) *string { return &f.BackgroundInfo },
	func(f *domain.ChildForm) *string { return &f.HealthStatus },
	func(f *domain.ChildForm) *string { return &f.Responsibility },
	func(f *domain.ChildForm) *string { return &f.RelationshipWithChrist },
	func(f *domain.ChildForm) *string { return &f.Religion },
	func(f *domain.ChildForm) *string { return &f.PrayerRequest },
	func(f *domain.ChildForm) *string { return &f.YearEnrolled },
	func(f *domain.ChildForm) *string { return &f.IsDeparted },
	func(f *domain.ChildForm) *string { return &f.StaffComment },
	func(f *domain.ChildForm) *string { return &f.CompiledBy },
}

// rowToForm fills a form from one data row, converting serial dates and spreadsheet booleans.
func rowToForm(sheet *spreadsheet.Sheet, cells []string) *domain.ChildForm {
	form := &domain.ChildForm{}
	for i, field := range importColumns {
		if i < len(cells) {
			*field(form) = cells[i]
		}
	}
	form.DateOfBirth = sheet.Date(form.DateOfBirth)
	for _, p := range []*string{&form.IsChildInSchool, &form.IsSponsored, &form.IsFatherAlive, &form.IsMotherAlive, &form.IsDeparted} {
		*p = yesNoCell(*p)
	}
	return form
}

// yesNoCell maps the boolean spellings spreadsheets produce onto Yes and No.
// Anything else is left for the form validation to reject.
func yesNoCell(cell string) string {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "y", "true", "1":
		return string(domain.Yes)
	case "n", "false", "0":
		return string(domain.No)
	}
	return cell
}

// ImportChildren creates one child per data row. Rows are committed one by one and the
// first bad row stops the batch, so the rows before it stay imported. The sponsored
// column is validated but never stored, imported children start unsponsored.
func (cu *childUC) ImportChildren(ctx context.Context, filename string, r io.Reader) (int, error) {
	sheet, err := spreadsheet.ReadRows(filename, r)
	if err != nil {
		return 0, &domain.ImportError{Err: err}
	}

	created := 0
	for i, cells := range sheet.Rows[1:] {
		rowNumber := i + 2
		if len(cells) == 0 || strings.TrimSpace(cells[0]) == "" {
			continue
		}

		child, err := cu.buildNew(rowToForm(sheet, cells))
		if err != nil {
			return created, &domain.ImportError{Row: rowNumber, Err: err}
		}

		if err := cu.createImported(ctx, child); err != nil {
			return created, &domain.ImportError{Row: rowNumber, Err: err}
		}
		created++
	}

	return created, nil
}

func (cu *childUC) createImported(ctx context.Context, child *domain.Child) error {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.CreateChild(ctx, child)
}
