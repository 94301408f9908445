package cmd

import (
	"log/slog"

	httpin "github.com/kikis202/spot/internal/adapters/in/http"
	"github.com/kikis202/spot/internal/adapters/out/postgres"
	"github.com/kikis202/spot/internal/core/application/usecases/commands"
	"github.com/kikis202/spot/internal/core/application/usecases/queries"
	"github.com/kikis202/spot/internal/jobs"
	"github.com/kikis202/spot/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const metricsNamespace = "spot"

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.NewMetrics(prometheus.DefaultRegisterer, metricsNamespace),
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.CreateParcelUoWFactory = FuncCreateParcelUoWFactory(func() commands.CreateParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.metrics)
}

func (c *CompositionRoot) CreateAssignParcelsCommandHandler() commands.AssignParcelsCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignParcelsCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateStatusesCommandHandler() commands.UpdateStatusesCommandHandler {
	var f commands.UpdateStatusesUoWFactory = FuncUpdateStatusesUoWFactory(func() commands.UpdateStatusesUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStatusesCommandHandler(f, c.metrics)
}

func (c *CompositionRoot) CreateTrackParcelCommandHandler() commands.TrackParcelCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTrackParcelCommandHandler(f, c.metrics)
}

func (c *CompositionRoot) CreateStopTrackingCommandHandler() commands.StopTrackingCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStopTrackingCommandHandler(f, c.metrics)
}

func (c *CompositionRoot) CreateCreateAddressCommandHandler() commands.CreateAddressCommandHandler {
	return commands.NewCreateAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAddressCommandHandler() commands.UpdateAddressCommandHandler {
	return commands.NewUpdateAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateRemoveAddressCommandHandler() commands.RemoveAddressCommandHandler {
	return commands.NewRemoveAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateCreateContactCommandHandler() commands.CreateContactCommandHandler {
	var f commands.ContactUoWFactory = FuncContactUoWFactory(func() commands.ContactUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateContactCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMachineCommandHandler() commands.CreateMachineCommandHandler {
	return commands.NewCreateMachineCommandHandler(c.machineUoWFactory())
}

func (c *CompositionRoot) CreateChangeUserRoleCommandHandler() commands.ChangeUserRoleCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeUserRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateReclaimLockersCommandHandler() commands.ReclaimLockersCommandHandler {
	return commands.NewReclaimLockersCommandHandler(c.machineUoWFactory(), c.metrics)
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) machineUoWFactory() commands.MachineUoWFactory {
	return FuncMachineUoWFactory(func() commands.MachineUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReclaimLockersCommandHandler(), logger)
}

// CreateHTTPServer wires every command and query handler into the API surface.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Commands{
			CreateParcel:   c.CreateCreateParcelCommandHandler(),
			AssignParcels:  c.CreateAssignParcelsCommandHandler(),
			UpdateStatuses: c.CreateUpdateStatusesCommandHandler(),
			TrackParcel:    c.CreateTrackParcelCommandHandler(),
			StopTracking:   c.CreateStopTrackingCommandHandler(),
			CreateAddress:  c.CreateCreateAddressCommandHandler(),
			UpdateAddress:  c.CreateUpdateAddressCommandHandler(),
			RemoveAddress:  c.CreateRemoveAddressCommandHandler(),
			CreateContact:  c.CreateCreateContactCommandHandler(),
			CreateMachine:  c.CreateCreateMachineCommandHandler(),
			ChangeUserRole: c.CreateChangeUserRoleCommandHandler(),
		},
		httpin.Queries{
			GetParcel:         queries.NewGetParcelQueryHandler(c.gormDB),
			ListParcels:       queries.NewListParcelsQueryHandler(c.gormDB),
			ListMachines:      queries.NewListMachinesQueryHandler(c.gormDB),
			ListMachinesAdmin: queries.NewListMachinesAdminQueryHandler(c.gormDB),
			ListAddresses:     queries.NewListAddressesQueryHandler(c.gormDB),
			GetAddress:        queries.NewGetAddressQueryHandler(c.gormDB),
			GetContact:        queries.NewGetContactQueryHandler(c.gormDB),
			ListUsers:         queries.NewListUsersQueryHandler(c.gormDB),
		},
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncCreateParcelUoWFactory func() commands.CreateParcelUoW

func (f FuncCreateParcelUoWFactory) Create() commands.CreateParcelUoW {
	return f()
}

type FuncUpdateStatusesUoWFactory func() commands.UpdateStatusesUoW

func (f FuncUpdateStatusesUoWFactory) Create() commands.UpdateStatusesUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncContactUoWFactory func() commands.ContactUoW

func (f FuncContactUoWFactory) Create() commands.ContactUoW {
	return f()
}

type FuncMachineUoWFactory func() commands.MachineUoW

func (f FuncMachineUoWFactory) Create() commands.MachineUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
