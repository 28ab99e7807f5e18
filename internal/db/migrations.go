package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'review_status') THEN
			CREATE TYPE review_status AS ENUM ('in_review', 'approved', 'rejected');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'trip_status') THEN
			CREATE TYPE trip_status AS ENUM ('upcoming', 'running', 'completed', 'canceled');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'payment_status') THEN
			CREATE TYPE payment_status AS ENUM ('pending', 'completed');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'trip_type') THEN
			CREATE TYPE trip_type AS ENUM ('single_trip', 'round_trip', 'multi_stop');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'payout_status') THEN
			CREATE TYPE payout_status AS ENUM ('pending', 'completed');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS fleet_companies (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		company_name VARCHAR(255) NOT NULL,
		contact_name VARCHAR(255),
		phone VARCHAR(32),
		email VARCHAR(255),
		city VARCHAR(128),
		address TEXT,
		logo_url TEXT,
		status review_status NOT NULL DEFAULT 'in_review',
		status_description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fleet_companies_status ON fleet_companies (status);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		full_name VARCHAR(255) NOT NULL,
		phone VARCHAR(32),
		email VARCHAR(255),
		city VARCHAR(128),
		license_number VARCHAR(64),
		photo_url TEXT,
		fleet_company_id UUID REFERENCES fleet_companies(id) ON DELETE SET NULL,
		status review_status NOT NULL DEFAULT 'in_review',
		status_description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_drivers_status ON drivers (status);`,
	`CREATE INDEX IF NOT EXISTS idx_drivers_fleet_company_id ON drivers (fleet_company_id);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate_number VARCHAR(32) NOT NULL,
		brand VARCHAR(64),
		model VARCHAR(64),
		year INT,
		color VARCHAR(32),
		seats INT,
		features JSONB,
		photo_url TEXT,
		driver_id UUID REFERENCES drivers(id) ON DELETE SET NULL,
		fleet_company_id UUID REFERENCES fleet_companies(id) ON DELETE SET NULL,
		status review_status NOT NULL DEFAULT 'in_review',
		status_description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_status ON vehicles (status);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_driver_id ON vehicles (driver_id);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_fleet_company_id ON vehicles (fleet_company_id);`,
	`CREATE TABLE IF NOT EXISTS documents (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		owner_type VARCHAR(32) NOT NULL,
		owner_id UUID NOT NULL,
		document_type VARCHAR(32) NOT NULL,
		document_number VARCHAR(128),
		document_expiry_date TIMESTAMPTZ,
		document_url TEXT,
		uploaded_by UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_documents_owner ON documents (owner_type, owner_id);`,
	`CREATE INDEX IF NOT EXISTS idx_documents_expiry ON documents (document_expiry_date);`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_status trip_status NOT NULL DEFAULT 'upcoming',
		payment_status payment_status NOT NULL DEFAULT 'pending',
		trip_type trip_type NOT NULL DEFAULT 'single_trip',
		driver_id UUID REFERENCES drivers(id) ON DELETE SET NULL,
		vehicle_id UUID REFERENCES vehicles(id) ON DELETE SET NULL,
		fleet_company_id UUID REFERENCES fleet_companies(id) ON DELETE SET NULL,
		total_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		tax_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		start_at TIMESTAMPTZ,
		end_at TIMESTAMPTZ,
		user_details JSONB,
		payment_transaction JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_trip_status ON trips (trip_status);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_driver_id ON trips (driver_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_fleet_company_id ON trips (fleet_company_id);`,
	`CREATE TABLE IF NOT EXISTS trip_stops (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		position INT NOT NULL,
		address TEXT NOT NULL,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trip_stops_trip_id ON trip_stops (trip_id, position);`,
	`CREATE TABLE IF NOT EXISTS driver_leaves (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		driver_id UUID NOT NULL REFERENCES drivers(id) ON DELETE CASCADE,
		leave_start TIMESTAMPTZ NOT NULL,
		leave_end TIMESTAMPTZ NOT NULL,
		leave_reason TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_driver_leaves_driver_id ON driver_leaves (driver_id);`,
	`CREATE TABLE IF NOT EXISTS payouts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		driver_id UUID REFERENCES drivers(id) ON DELETE SET NULL,
		fleet_company_id UUID REFERENCES fleet_companies(id) ON DELETE SET NULL,
		amount NUMERIC(12,2) NOT NULL,
		trip_count INT NOT NULL DEFAULT 0,
		period_start TIMESTAMPTZ NOT NULL,
		period_end TIMESTAMPTZ NOT NULL,
		status payout_status NOT NULL DEFAULT 'pending',
		completed_at TIMESTAMPTZ,
		transaction JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_payouts_driver_id ON payouts (driver_id);`,
	`CREATE INDEX IF NOT EXISTS idx_payouts_status ON payouts (status);`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		recipient_role VARCHAR(32) NOT NULL,
		recipient_id UUID NOT NULL,
		title VARCHAR(255) NOT NULL,
		body TEXT,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications (recipient_role, recipient_id);`,
	`CREATE TABLE IF NOT EXISTS status_log (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		entity_type VARCHAR(32) NOT NULL,
		entity_id UUID NOT NULL,
		old_status review_status,
		new_status review_status NOT NULL,
		reason TEXT,
		changed_by UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_status_log_entity ON status_log (entity_type, entity_id);`,
	`CREATE OR REPLACE FUNCTION set_row_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	DECLARE
		tbl TEXT;
	BEGIN
		FOREACH tbl IN ARRAY ARRAY['fleet_companies', 'drivers', 'vehicles', 'documents', 'trips', 'payouts'] LOOP
			IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_' || tbl || '_updated_at') THEN
				EXECUTE format('CREATE TRIGGER trg_%s_updated_at BEFORE UPDATE ON %I FOR EACH ROW EXECUTE PROCEDURE set_row_updated_at()', tbl, tbl);
			END IF;
		END LOOP;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
