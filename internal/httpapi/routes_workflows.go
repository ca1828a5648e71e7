package httpapi

import (
	"net/http"

	"brothertrans/backend/internal/service"
)

// handleRecordService accepts the urlencoded intake form and answers with the
// redirect the frontend pages expect.
func (a *API) handleRecordService(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	mileage, err := parseFormIntDefault(r, "mileage", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cost, err := parseFormInt(r, "cost")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := service.ServiceIntake{
		PlateNumber:  formValue(r, "plateNumber"),
		Mileage:      mileage,
		ServiceDate:  formValue(r, "serviceDate"),
		WorkshopName: formValue(r, "workshopName"),
		Cost:         cost,
		Description:  formValue(r, "description"),
	}
	if _, _, err := a.service.RecordService(r.Context(), input); err != nil {
		writeServiceError(w, err)
		return
	}

	http.Redirect(w, r, "/index.html?status=success", http.StatusSeeOther)
}

// handleRecordSale accepts the cashier form. A sale may be labor only; the
// part line is optional and an empty selectedPartId means none.
func (a *API) handleRecordSale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	laborFee, err := parseFormIntDefault(r, "laborFee", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	selectedPartID, err := parseFormIntDefault(r, "selectedPartId", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	partQty, err := parseFormIntDefault(r, "partQty", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := service.WorkshopSale{
		PlateNumber:    formValue(r, "plateNumber"),
		LaborFee:       laborFee,
		CustomAction:   formValue(r, "customAction"),
		SelectedPartID: selectedPartID,
		PartQty:        partQty,
		Status:         formValue(r, "status"),
	}
	if _, err := a.service.RecordSale(r.Context(), input); err != nil {
		writeServiceError(w, err)
		return
	}

	http.Redirect(w, r, "/cashier.html", http.StatusSeeOther)
}
