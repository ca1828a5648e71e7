package httpapi

import "net/http"

func (a *API) handleListUnits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	units, err := a.service.ListUnits(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

func (a *API) handleListServices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	services, err := a.service.ListServices(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (a *API) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	transactions, err := a.service.ListTransactions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (a *API) handleListParts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	parts, err := a.service.ListParts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, parts)
}

func (a *API) handleUnitDetail(w http.ResponseWriter, r *http.Request, plate string) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	detail, err := a.service.UnitDetail(r.Context(), plate)
	if err != nil {
		writeDetailError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
