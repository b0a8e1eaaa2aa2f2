package usecase

import (
	"page-analyzer/internal/usecase/adapters"
)

type serviceFactory struct {
	deps Params
}

func newServiceFactory(deps Params) *serviceFactory {
	return &serviceFactory{
		deps: deps,
	}
}

func (f *serviceFactory) CreateInspectService() adapters.InspectService {
	return NewInspectService(InspectServiceParams{
		Browser:  f.deps.Browser,
		Analyzer: f.deps.Analyzer,
		Config:   f.deps.Config,
		Logger:   f.deps.Logger,
	})
}

func (f *serviceFactory) CreateBrowserService() adapters.BrowserService {
	return f.deps.Browser
}

func (f *serviceFactory) CreateAnalyzerService() adapters.AnalyzerService {
	return f.deps.Analyzer
}
