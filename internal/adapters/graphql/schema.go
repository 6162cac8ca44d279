package graphql

import (
	"github.com/graphql-go/graphql"
)

// NewSchema は /graphql で公開するクエリ・ミューテーションスキーマを構築します。
// フィールド名はダッシュボードのフロントエンドが期待する形に合わせています。
func NewSchema(r *Resolver) (graphql.Schema, error) {
	departemenType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Departemen",
		Fields: graphql.Fields{
			"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"namaDepartemen": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"slugDepartemen": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	vendorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Vendor",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"namaVendor": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"slugVendor": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"alamat":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"noTelp":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	karyawanType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Karyawan",
		Fields: graphql.Fields{
			"id":                   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"nik":                  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"NamaLengkap":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"alamat":               &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"noTelp":               &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"tanggalMasukKaryawan": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"departemenId":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"vendorId":             &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"departemen":           &graphql.Field{Type: graphql.NewNonNull(departemenType)},
			"vendor":               &graphql.Field{Type: graphql.NewNonNull(vendorType)},
			"createdAt":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"updatedAt":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	attendancePointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AttendancePoint",
		Fields: graphql.Fields{
			"month": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"hadir": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"izin":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"alpha": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	departmentShareType := graphql.NewObject(graphql.ObjectConfig{
		Name: "DepartmentShare",
		Fields: graphql.Fields{
			"departemen": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"jumlah":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	dashboardType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Dashboard",
		Fields: graphql.Fields{
			"attendance":  &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(attendancePointType)))},
			"departments": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(departmentShareType)))},
		},
	})

	createKaryawanInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateKaryawanInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nik":                  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"NamaLengkap":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"alamat":               &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"noTelp":               &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"tanggalMasukKaryawan": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"departemenId":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"vendorId":             &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	updateKaryawanInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateKaryawanInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nik":                  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"NamaLengkap":          &graphql.InputObjectFieldConfig{Type: graphql.String},
			"alamat":               &graphql.InputObjectFieldConfig{Type: graphql.String},
			"noTelp":               &graphql.InputObjectFieldConfig{Type: graphql.String},
			"tanggalMasukKaryawan": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"departemenId":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"vendorId":             &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"karyawan": &graphql.Field{
				Type: karyawanType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveKaryawan,
			},
			"karyawans": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(karyawanType))),
				Resolve: r.resolveKaryawans,
			},
			"departemens": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(departemenType))),
				Resolve: r.resolveDepartemens,
			},
			"vendors": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(vendorType))),
				Resolve: r.resolveVendors,
			},
			"dashboard": &graphql.Field{
				Type:    graphql.NewNonNull(dashboardType),
				Resolve: r.resolveDashboard,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createKaryawan": &graphql.Field{
				Type: graphql.NewNonNull(karyawanType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createKaryawanInput)},
				},
				Resolve: r.resolveCreateKaryawan,
			},
			"updateKaryawan": &graphql.Field{
				Type: graphql.NewNonNull(karyawanType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateKaryawanInput)},
				},
				Resolve: r.resolveUpdateKaryawan,
			},
			"deleteKaryawan": &graphql.Field{
				Type: graphql.NewNonNull(karyawanType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveDeleteKaryawan,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
